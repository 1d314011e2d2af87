package main

import (
	"fmt"
	"time"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/ball"
	"physics-engine/internal/engineconfig"
	"physics-engine/internal/gameloop"
	"physics-engine/internal/graphics"
	"physics-engine/internal/input"
	"physics-engine/internal/logger"
	"physics-engine/internal/scene"
	"physics-engine/internal/terrain"
	"physics-engine/internal/vehicle"
)

const (
	ballDensity = 80
	ballRadius  = 0.5
)

var ballSpawn = math32.Vec3(4, 1.5, 8)

func main() {
	log := logger.New()
	prefs, _ := engineconfig.Load()

	tun := vehicle.LoadTuning(prefs.TuningPath)
	terra := terrain.New(terrain.DefaultOptions())

	// Spawn with the suspension fully extended, wheels just touching.
	carSpawn := math32.Vec3(0, tun.WheelRadius+tun.SuspensionRest, 0)
	car, err := vehicle.NewCar(tun, terra, carSpawn)
	if err != nil {
		log.Logf("car setup failed: %v", err)
		return
	}
	bl, err := ball.New(ballDensity, ballRadius, tun.Gravity, ballSpawn)
	if err != nil {
		log.Logf("ball setup failed: %v", err)
		return
	}
	log.Logf("starting: chassis %.0f kg, update rate %d Hz", tun.ChassisMass, prefs.UpdateHz)

	scn := scene.New(terra)
	scn.SetGridVisible(prefs.GridVisible)
	scn.ShowDebug = prefs.ShowDebug

	loop := gameloop.New(time.Second / time.Duration(prefs.UpdateHz))
	step := func(dt time.Duration) {
		fdt := float32(dt.Seconds())
		car.SetControls(vehicle.Controls{
			Throttle: axisValue(input.IsDown(input.Accelerate)),
			Brake:    axisValue(input.IsDown(input.Brake)),
			Steering: input.Axis(input.SteerLeft, input.SteerRight),
		})
		car.Update(fdt)
		bl.Update(fdt, terra)
	}

	update := func() {
		if input.WasPressed(input.Reset) {
			car.Reset(carSpawn)
			bl.Reset(ballSpawn)
			log.Log("world reset")
		}
		if input.WasPressed(input.ToggleGrid) {
			prefs.GridVisible = !prefs.GridVisible
			scn.SetGridVisible(prefs.GridVisible)
		}
		if input.WasPressed(input.ToggleDebug) {
			prefs.ShowDebug = !prefs.ShowDebug
			scn.ShowDebug = prefs.ShowDebug
		}

		frame := time.Duration(rl.GetFrameTime() * float32(time.Second))
		loop.Advance(frame, step)

		forward := math32.Vec3(0, 0, 1).MulQuat(car.Rotation())
		scn.FollowCamera(car.Position(), forward, rl.GetFrameTime())
	}

	draw := func() {
		scn.Draw(car, bl.Position(), bl.Radius())
		drawHUD(car, prefs)
	}

	graphics.Run(update, draw)

	_ = engineconfig.Save(prefs)
	log.Log("shutdown")
}

func axisValue(down bool) float32 {
	if down {
		return 1
	}
	return 0
}

func drawHUD(car *vehicle.Car, prefs engineconfig.EnginePrefs) {
	rl.DrawText(fmt.Sprintf("%5.1f km/h", car.Speed()*3.6), 20, 20, 24, rl.RayWhite)
	rl.DrawText("WASD / arrows drive, R reset, G grid, F1 debug", 20, 50, 16, rl.LightGray)
	if prefs.ShowFPS {
		rl.DrawFPS(20, 76)
	}
}
