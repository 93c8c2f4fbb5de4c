package robot

import "robotscene/quarkgl"

const (
	lightColor     = 0xffffff
	lightIntensity = 5
)

var lightPosition = quarkgl.V3(5, 10, 5)

// Scene is the assembled graph: robot and stars as sibling roots under the
// scene root, lit by one directional light.
type Scene struct {
	Graph *quarkgl.Scene
	Robot *quarkgl.Node
	Stars *quarkgl.Node
	Light *quarkgl.DirectionalLight
}

// BuildScene assembles the robot, the light and a field of stars stars.
func BuildScene(b Builder, rnd Random, stars int) *Scene {
	g := quarkgl.NewScene()

	robot := BuildRobot(b)
	g.Add(robot)

	light := quarkgl.NewDirectionalLight(quarkgl.Hex(lightColor), lightIntensity)
	light.Position = lightPosition
	g.SetLight(light)

	field := BuildStars(b, rnd, stars)
	g.Add(field)

	return &Scene{Graph: g, Robot: robot, Stars: field, Light: light}
}
