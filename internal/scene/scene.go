package scene

import (
	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/terrain"
	"physics-engine/internal/vehicle"
)

const (
	gridExtent     = 16
	gridMinorStep  = 1
	gridMajorStep  = 4
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	// Terrain mesh: world extent on X/Z and heightmap resolution in samples.
	terrainExtent  = 256
	terrainSamples = 256

	// Chase camera placement relative to the car, and the per-second
	// smoothing rate toward the desired position.
	followDistance = 9.0
	followHeight   = 4.0
	followRate     = 5.0
	followAimUp    = 1.0
)

// Scene holds a 3D chase camera and draws the 3D world: terrain, car, ball,
// and optional grid/debug overlays. Update runs camera logic; Draw renders
// between BeginMode3D and EndMode3D.
//
// GPU resources (terrain and car meshes) are loaded lazily on first Draw so
// they are created after the window/GL context exists.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	ShowDebug   bool

	terra *terrain.Terrain

	terrainModel rl.Model
	chassisModel rl.Model
	wheelModel   rl.Model
	loaded       bool
}

// New returns a scene over the given terrain with a perspective chase camera.
// Camera starts behind the origin looking at it; FollowCamera moves it each
// frame. Grid is hidden by default (the terrain shows the ground).
func New(t *terrain.Terrain) *Scene {
	s := &Scene{terra: t}
	s.Camera.Position = rl.NewVector3(0, followHeight, -followDistance)
	s.Camera.Target = rl.NewVector3(0, followAimUp, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 60
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the reference grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// FollowCamera eases the camera toward a point behind the target along its
// forward direction, raised by followHeight, and aims slightly above the
// target. Exponential smoothing keeps the motion frame-rate independent.
func (s *Scene) FollowCamera(target, forward math32.Vector3, dt float32) {
	desired := target.Sub(forward.MulScalar(followDistance))
	desired.Y = target.Y + followHeight

	k := 1 - math32.Exp(-followRate*dt)
	s.Camera.Position.X += (desired.X - s.Camera.Position.X) * k
	s.Camera.Position.Y += (desired.Y - s.Camera.Position.Y) * k
	s.Camera.Position.Z += (desired.Z - s.Camera.Position.Z) * k
	s.Camera.Target = rl.NewVector3(target.X, target.Y+followAimUp, target.Z)
}

// ensureLoaded builds the terrain and car meshes the first time we Draw, so
// mesh upload happens after the window/GL context exists.
func (s *Scene) ensureLoaded(car *vehicle.Car) {
	if s.loaded {
		return
	}
	s.loaded = true

	s.terrainModel = rl.LoadModelFromMesh(buildTerrainMesh(s.terra))

	t := car.Tuning()
	s.chassisModel = rl.LoadModelFromMesh(rl.GenMeshCube(t.ChassisWidth, t.ChassisHeight, t.ChassisLength))
	s.wheelModel = rl.LoadModelFromMesh(rl.GenMeshCylinder(t.WheelRadius, t.WheelWidth, 16))
}

// buildTerrainMesh samples the height field into a grayscale image and lets
// raylib turn it into a heightmapped mesh. This avoids manual vertex pointer
// math; physics keeps using the analytic height query, the mesh is display
// only.
func buildTerrainMesh(t *terrain.Terrain) rl.Mesh {
	scale := t.Options().HeightScale
	img := rl.GenImageColor(terrainSamples, terrainSamples, rl.Black)
	step := float32(terrainExtent) / float32(terrainSamples-1)
	for z := 0; z < terrainSamples; z++ {
		for x := 0; x < terrainSamples; x++ {
			wx := -terrainExtent/2 + float32(x)*step
			wz := -terrainExtent/2 + float32(z)*step
			h := math32.Clamp(t.HeightAt(wx, wz)/scale, 0, 1)
			v := uint8(h * 255)
			rl.ImageDrawPixel(img, int32(x), int32(z), rl.NewColor(v, v, v, 255))
		}
	}
	size := rl.NewVector3(terrainExtent, scale, terrainExtent)
	mesh := rl.GenMeshHeightmap(*img, size)
	rl.UnloadImage(img)
	return mesh
}

// Draw renders the 3D scene: terrain, car chassis and wheels, the ball, and
// the optional grid and debug overlays. Call between ClearBackground and any
// 2D overlay.
func (s *Scene) Draw(car *vehicle.Car, ballPos math32.Vector3, ballRadius float32) {
	s.ensureLoaded(car)
	rl.BeginMode3D(s.Camera)

	// GenMeshHeightmap spans [0,extent] from the origin; recenter on XZ.
	rl.DrawModel(s.terrainModel, rl.NewVector3(-terrainExtent/2, 0, -terrainExtent/2), 1, rl.NewColor(90, 160, 80, 255))

	s.drawCar(car)
	rl.DrawSphere(rl.NewVector3(ballPos.X, ballPos.Y, ballPos.Z), ballRadius, rl.Gold)

	if s.GridVisible {
		drawReferenceGrid()
	}
	if s.ShowDebug {
		drawCarDebug(car)
	}
	rl.EndMode3D()
}

func (s *Scene) drawCar(car *vehicle.Car) {
	pos := car.Position()
	s.chassisModel.Transform = quatToMatrix(car.Rotation())
	rl.DrawModel(s.chassisModel, rl.NewVector3(pos.X, pos.Y, pos.Z), 1, rl.Maroon)

	t := car.Tuning()
	chassisRot := quatToMatrix(car.Rotation())
	for i := 0; i < vehicle.NumWheels; i++ {
		wp := vehicle.WheelPos(i)
		hub, spin, steer := car.WheelWorldPose(wp)

		// Cylinder meshes extend along +Y from the origin; center it,
		// lay it on the lateral axis, then spin, steer, and follow the
		// chassis orientation.
		m := rl.MatrixTranslate(0, -t.WheelWidth/2, 0)
		m = rl.MatrixMultiply(m, rl.MatrixRotateZ(math32.Pi/2))
		m = rl.MatrixMultiply(m, rl.MatrixRotateX(spin))
		m = rl.MatrixMultiply(m, rl.MatrixRotateY(steer))
		m = rl.MatrixMultiply(m, chassisRot)
		s.wheelModel.Transform = m
		rl.DrawModel(s.wheelModel, rl.NewVector3(hub.X, hub.Y, hub.Z), 1, rl.DarkGray)
	}
}

func quatToMatrix(q math32.Quat) rl.Matrix {
	return rl.QuaternionToMatrix(rl.NewQuaternion(q.X, q.Y, q.Z, q.W))
}

// drawCarDebug draws the chassis velocity (lime) and angular velocity
// (magenta) as arrows from the center of mass, and per wheel its heading and
// the suspension ray, green when grounded and red in the air.
func drawCarDebug(car *vehicle.Car) {
	pos := car.Position()
	drawArrow(pos, car.Chassis().Velocity().MulScalar(0.3), rl.Lime)
	drawArrow(pos, car.Chassis().AngularVelocity().MulScalar(0.5), rl.Magenta)

	wheels := car.Wheels()
	for i := 0; i < vehicle.NumWheels; i++ {
		wp := vehicle.WheelPos(i)
		hub, _, steer := car.WheelWorldPose(wp)
		w := &wheels[i]

		heading := math32.Vec3(0, 0, 1)
		if steer != 0 {
			var q math32.Quat
			q.SetFromAxisAngle(math32.Vec3(0, 1, 0), steer)
			heading = heading.MulQuat(q)
		}
		heading = heading.MulQuat(car.Rotation())
		drawArrow(hub, heading.MulScalar(0.8), rl.SkyBlue)

		c := rl.Red
		if w.Grounded {
			c = rl.Green
		}
		drop := hub
		drop.Y -= w.Radius + w.RestLength
		rl.DrawLine3D(rl.NewVector3(hub.X, hub.Y, hub.Z), rl.NewVector3(drop.X, drop.Y, drop.Z), c)
	}
}

func drawArrow(from, delta math32.Vector3, c rl.Color) {
	tip := from.Add(delta)
	rl.DrawLine3D(rl.NewVector3(from.X, from.Y, from.Z), rl.NewVector3(tip.X, tip.Y, tip.Z), c)
}

// drawReferenceGrid draws a grid on the XZ plane with major/minor lines and
// axis lines through the origin (X=red, Y=green, Z=blue). Reuses start/end
// vectors to avoid per-frame allocations in the hot loop.
func drawReferenceGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
