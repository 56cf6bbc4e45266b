// Interactive maze viewer - watches a robot explore and solve a maze, with
// the true walls, the robot's learned walls, and the flood distances drawn
// live. With -headless the run executes without graphics and reports the
// result as structured log output.
//
// Usage: go run . -maze mazes/ran_12_50_1131111.txt
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/micromouse/config"
	"github.com/pthm-cable/micromouse/grid"
	"github.com/pthm-cable/micromouse/maze"
	"github.com/pthm-cable/micromouse/robot"
	"github.com/pthm-cable/micromouse/sim"
)

const (
	boardMargin = 10
	panelWidth  = 260
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mazePath := flag.String("maze", "", "Maze text file (empty = generate a random maze)")
	tourMode := flag.Int("tour", -1, "Tour mode override 0..7 (-1 = use config)")
	seed := flag.Int64("seed", 0, "Generator seed when no maze file is given (0 = time-based)")
	headless := flag.Bool("headless", false, "Run without graphics and report the result")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	loadMaze := func() (*maze.Maze, string) {
		if *mazePath != "" {
			mz, err := maze.Load(*mazePath)
			if err != nil {
				slog.Error("failed to load maze", "path", *mazePath, "error", err)
				os.Exit(1)
			}
			return mz, filepath.Base(*mazePath)
		}
		return maze.Generate(cfg.Maze.Dim, cfg.Maze.GenAttempts, rng), "generated"
	}

	mz, name := loadMaze()
	newRunner := func(mz *maze.Maze, name string) *sim.Runner {
		r, err := sim.NewRunner(name, mz, cfg.RobotOptions(*tourMode), cfg.Sensor.MaxRange, cfg.Score.ExploreDivisor)
		if err != nil {
			slog.Error("failed to start run", "error", err)
			os.Exit(1)
		}
		return r
	}

	if *headless {
		// Headless mode - run to completion, no raylib needed
		rec := newRunner(mz, name).Run()
		slog.Info("run finished",
			"maze", rec.Maze,
			"dim", rec.Dim,
			"tour_mode", rec.TourMode,
			"shortest_path", rec.ShortestPath,
			"explore_steps", rec.ExploreSteps,
			"exploit_steps", rec.ExploitSteps,
			"exploit_cells", rec.ExploitCells,
			"cells_discovered", rec.CellsDiscovered,
			"score", rec.Score,
			"goal_reached", rec.GoalReached,
		)
		if rec.Failure != "" {
			slog.Error("run failed", "failure", rec.Failure)
			os.Exit(1)
		}
		return
	}

	runner := newRunner(mz, name)

	width := int32(cfg.Viewer.Width)
	height := int32(cfg.Viewer.Height)
	rl.InitWindow(width+panelWidth, height, "Micromouse")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Viewer.TargetFPS))

	running := false
	finished := false
	speed := float32(1)
	frame := 0

	for !rl.WindowShouldClose() {
		// Advance the simulation: at speed s, one robot step every
		// step_delay/s frames, clamped to at least one frame apart.
		if running && !finished {
			frame++
			interval := int(float32(cfg.Viewer.StepDelay) / speed)
			if interval < 1 {
				interval = 1
			}
			if frame%interval == 0 {
				finished = !runner.Tick()
			}
		}
		if rl.IsKeyPressed(rl.KeySpace) && !finished {
			finished = !runner.Tick()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		board := rl.Rectangle{
			X: boardMargin, Y: boardMargin,
			Width: float32(width) - 2*boardMargin, Height: float32(height) - 2*boardMargin,
		}
		drawMaze(board, runner)

		// Control panel
		panelX := float32(width) + 10
		panelY := float32(10)
		rob := runner.Robot()

		rl.DrawText("Maze Viewer", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText(fmt.Sprintf("Phase: %s", rob.Phase()), int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 22
		rl.DrawText(fmt.Sprintf("Steps: %d (explore %d, exploit %d)",
			rob.Steps(), rob.ExploreSteps(), rob.ExploitSteps()), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 20
		rl.DrawText(fmt.Sprintf("Cells discovered: %d / %d",
			rob.Map().CellsDiscovered(), runner.Maze().Dim()*runner.Maze().Dim()), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 20
		rl.DrawText(fmt.Sprintf("Walls known: %d", rob.Map().KnownWalls()), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 30

		// Speed slider
		rl.DrawText("Speed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		speed = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 100, Height: 20},
			"0.5", "20",
			speed, 0.5, 20,
		)
		rl.DrawText(fmt.Sprintf("%.1fx", speed), int32(panelX+panelWidth-90), int32(panelY+2), 16, rl.DarkGray)
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 110, Height: 30}, toggleText(running, "Pause", "Run")) {
			running = !running
		}
		if gui.Button(rl.Rectangle{X: panelX + 120, Y: panelY, Width: 110, Height: 30}, "Step") && !finished {
			finished = !runner.Tick()
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 110, Height: 30}, "Restart") {
			runner = newRunner(mz, name)
			running = false
			finished = false
		}
		if *mazePath == "" {
			if gui.Button(rl.Rectangle{X: panelX + 120, Y: panelY, Width: 110, Height: 30}, "New Maze") {
				mz, name = loadMaze()
				runner = newRunner(mz, name)
				running = false
				finished = false
			}
		}
		panelY += 50

		if finished {
			rec := runner.Record()
			rl.DrawText("Run finished", int32(panelX), int32(panelY), 16, rl.DarkGray)
			panelY += 22
			rl.DrawText(fmt.Sprintf("Score: %.2f", rec.Score), int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			rl.DrawText(fmt.Sprintf("Shortest path: %d", rec.ShortestPath), int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			if rec.Failure != "" {
				rl.DrawText(fmt.Sprintf("Failure: %s", rec.Failure), int32(panelX), int32(panelY), 14, rl.Red)
				panelY += 18
			}
		}

		rl.DrawText("Space = single step", int32(panelX), height-30, 12, rl.LightGray)

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// drawMaze renders the board: flood distances as a heatmap, true walls in
// light gray, robot-confirmed walls in black, the goal region, and the
// robot marker. Cell (0,0) is bottom-left, so rows are flipped for screen
// coordinates.
func drawMaze(board rl.Rectangle, runner *sim.Runner) {
	mz := runner.Maze()
	rob := runner.Robot()
	m := rob.Map()
	n := mz.Dim()
	cell := board.Width / float32(n)

	// Heatmap follows the active leg: distance to start on the homeward
	// legs of a coverage tour, distance to goal otherwise.
	dist := m.DistanceToGoal
	if rob.ReturningToStart() {
		dist = m.DistanceToStart
	}

	maxDist := 1
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if d := dist(grid.Cell{X: x, Y: y}); d > maxDist {
				maxDist = d
			}
		}
	}

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			c := grid.Cell{X: x, Y: y}
			px := board.X + float32(x)*cell
			py := board.Y + float32(n-1-y)*cell

			rl.DrawRectangle(int32(px), int32(py), int32(cell), int32(cell), distColor(dist(c), maxDist))
			if m.VisitCount(c) > 0 {
				rl.DrawCircle(int32(px+cell/2), int32(py+cell/2), cell*0.08, rl.Fade(rl.DarkGray, 0.4))
			}
		}
	}

	// Goal region outline
	h := n / 2
	gx := board.X + float32(h-1)*cell
	gy := board.Y + float32(n-1-h)*cell
	rl.DrawRectangleLinesEx(rl.Rectangle{X: gx, Y: gy, Width: 2 * cell, Height: 2 * cell}, 3, rl.Gold)

	// Walls: true maze faint, robot-known solid
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			c := grid.Cell{X: x, Y: y}
			px := board.X + float32(x)*cell
			py := board.Y + float32(n-1-y)*cell
			known := m.Walls(c)

			if !mz.IsOpen(c, grid.North) {
				drawWall(px, py, px+cell, py, known&grid.North.Mask() != 0)
			}
			if !mz.IsOpen(c, grid.South) {
				drawWall(px, py+cell, px+cell, py+cell, known&grid.South.Mask() != 0)
			}
			if !mz.IsOpen(c, grid.West) {
				drawWall(px, py, px, py+cell, known&grid.West.Mask() != 0)
			}
			if !mz.IsOpen(c, grid.East) {
				drawWall(px+cell, py, px+cell, py+cell, known&grid.East.Mask() != 0)
			}
		}
	}

	// Robot marker: a triangle pointing along the heading
	rc := rob.Cell()
	cx := board.X + (float32(rc.X)+0.5)*cell
	cy := board.Y + (float32(n-1-rc.Y)+0.5)*cell
	drawRobot(cx, cy, cell*0.32, rob.Heading())
}

func drawWall(x1, y1, x2, y2 float32, known bool) {
	if known {
		rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, 3, rl.Black)
	} else {
		rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, 1, rl.LightGray)
	}
}

func drawRobot(cx, cy, r float32, heading grid.Direction) {
	// Screen deltas per heading; screen y is inverted relative to the maze.
	var dx, dy float32
	switch heading {
	case grid.North:
		dy = -1
	case grid.East:
		dx = 1
	case grid.South:
		dy = 1
	case grid.West:
		dx = -1
	}
	tip := rl.Vector2{X: cx + dx*r, Y: cy + dy*r}
	left := rl.Vector2{X: cx - dx*r*0.6 + dy*r*0.6, Y: cy - dy*r*0.6 + dx*r*0.6}
	right := rl.Vector2{X: cx - dx*r*0.6 - dy*r*0.6, Y: cy - dy*r*0.6 - dx*r*0.6}
	rl.DrawTriangle(tip, left, right, rl.Maroon)
	rl.DrawCircle(int32(cx), int32(cy), r*0.25, rl.White)
}

// distColor maps a flood distance to a cool-to-warm gradient; unknown or
// unreachable cells stay white.
func distColor(d, max int) rl.Color {
	if d == robot.Unreachable {
		return rl.RayWhite
	}
	t := float32(d) / float32(max)
	r := uint8(235 - t*120)
	g := uint8(245 - t*60)
	b := uint8(255 - t*20)
	return rl.Color{R: r, G: g, B: b, A: 255}
}
