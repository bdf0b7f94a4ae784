package webhost

// defaultCamera is the camera the demo viewport starts on.
const defaultCamera = "persp"

// cameraPresets maps camera names to yaw/pitch presets read by the scene
// script. The keys double as the host's camera list.
var cameraPresets = map[string]string{
	"persp":   "persp",
	"top":     "top",
	"front":   "front",
	"side":    "side",
	"shotCam": "shotCam",
}

// sceneLayers maps visibility-catalog labels to scene layer keys. Categories
// outside this map are accepted but have no visual effect in the demo scene.
var sceneLayers = map[string]string{
	"Polygons":           "polygons",
	"NURBS Curves":       "curves",
	"Grid":               "grid",
	"Locators":           "locators",
	"HUD":                "hud",
	"Texture Placements": "textures",
}

// scenePage is the demo scene. It draws a deterministic turntable animation
// on a canvas so the same frame number always produces the same pixels.
const scenePage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  html, body { margin: 0; padding: 0; overflow: hidden; background: #2a2a2a; }
  canvas { display: block; }
</style>
</head>
<body>
<canvas id="viewport"></canvas>
<script>
(function () {
  var canvas = document.getElementById('viewport');
  var ctx = canvas.getContext('2d');

  var state = {
    frame: 1,
    camera: 'persp',
    ornaments: true,
    layers: { polygons: true, curves: true, grid: true, locators: true, hud: true, textures: true }
  };

  var cameraAngles = {
    persp:   { yaw: 0.6, pitch: 0.4 },
    top:     { yaw: 0.0, pitch: 1.5 },
    front:   { yaw: 0.0, pitch: 0.0 },
    side:    { yaw: 1.57, pitch: 0.0 },
    shotCam: { yaw: 1.1, pitch: 0.25 }
  };

  function resize() {
    canvas.width = window.innerWidth;
    canvas.height = window.innerHeight;
  }
  window.addEventListener('resize', function () { resize(); draw(); });
  resize();

  function project(x, y, z, cam) {
    var cy = Math.cos(cam.yaw), sy = Math.sin(cam.yaw);
    var cp = Math.cos(cam.pitch), sp = Math.sin(cam.pitch);
    var rx = x * cy - z * sy;
    var rz = x * sy + z * cy;
    var ry = y * cp - rz * sp;
    var scale = Math.min(canvas.width, canvas.height) / 4;
    return {
      x: canvas.width / 2 + rx * scale,
      y: canvas.height / 2 - ry * scale
    };
  }

  function draw() {
    var cam = cameraAngles[state.camera] || cameraAngles.persp;
    var t = state.frame / 24;

    ctx.fillStyle = '#2a2a2a';
    ctx.fillRect(0, 0, canvas.width, canvas.height);

    if (state.layers.grid) {
      ctx.strokeStyle = '#3f3f3f';
      ctx.lineWidth = 1;
      for (var g = -5; g <= 5; g++) {
        var a = project(g / 5, -0.8, -1, cam);
        var b = project(g / 5, -0.8, 1, cam);
        ctx.beginPath(); ctx.moveTo(a.x, a.y); ctx.lineTo(b.x, b.y); ctx.stroke();
        a = project(-1, -0.8, g / 5, cam);
        b = project(1, -0.8, g / 5, cam);
        ctx.beginPath(); ctx.moveTo(a.x, a.y); ctx.lineTo(b.x, b.y); ctx.stroke();
      }
    }

    if (state.layers.polygons) {
      var spin = t * 1.2;
      var pts = [];
      var corners = [[-1,-1,-1],[1,-1,-1],[1,1,-1],[-1,1,-1],[-1,-1,1],[1,-1,1],[1,1,1],[-1,1,1]];
      for (var i = 0; i < 8; i++) {
        var c = corners[i];
        var x = c[0] * Math.cos(spin) - c[2] * Math.sin(spin);
        var z = c[0] * Math.sin(spin) + c[2] * Math.cos(spin);
        pts.push(project(x * 0.5, c[1] * 0.5, z * 0.5, cam));
      }
      var edges = [[0,1],[1,2],[2,3],[3,0],[4,5],[5,6],[6,7],[7,4],[0,4],[1,5],[2,6],[3,7]];
      ctx.strokeStyle = state.layers.textures ? '#7fbf7f' : '#9f9f9f';
      ctx.lineWidth = 2;
      for (var e = 0; e < edges.length; e++) {
        var p0 = pts[edges[e][0]], p1 = pts[edges[e][1]];
        ctx.beginPath(); ctx.moveTo(p0.x, p0.y); ctx.lineTo(p1.x, p1.y); ctx.stroke();
      }
    }

    if (state.layers.curves) {
      ctx.strokeStyle = '#5f8fdf';
      ctx.lineWidth = 1.5;
      ctx.beginPath();
      for (var s = 0; s <= 64; s++) {
        var a2 = s / 64 * Math.PI * 2;
        var p = project(Math.cos(a2 + t), 0.2 * Math.sin(3 * a2 + t), Math.sin(a2 + t), cam);
        if (s === 0) ctx.moveTo(p.x, p.y); else ctx.lineTo(p.x, p.y);
      }
      ctx.stroke();
    }

    if (state.layers.locators) {
      var lp = project(0, 0.9, 0, cam);
      ctx.strokeStyle = '#df5f5f';
      ctx.beginPath(); ctx.moveTo(lp.x - 8, lp.y); ctx.lineTo(lp.x + 8, lp.y); ctx.stroke();
      ctx.beginPath(); ctx.moveTo(lp.x, lp.y - 8); ctx.lineTo(lp.x, lp.y + 8); ctx.stroke();
    }

    if (state.ornaments && state.layers.hud) {
      ctx.fillStyle = '#dddddd';
      ctx.font = '14px monospace';
      ctx.fillText('frame ' + state.frame, 12, canvas.height - 14);
      ctx.fillText(state.camera, 12, 22);
    }
  }

  window.__scene = {
    setFrame: function (n) { state.frame = n; draw(); },
    setCamera: function (name) { state.camera = name; draw(); },
    setLayer: function (key, on) { state.layers[key] = !!on; draw(); },
    setOrnaments: function (on) { state.ornaments = !!on; draw(); }
  };

  draw();
})();
</script>
</body>
</html>
`
