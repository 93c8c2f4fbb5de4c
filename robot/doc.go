// Package robot assembles the robot scene and animates it.
//
// BuildScene creates the robot and star field through a Builder, Loop rotates
// both roots once per scheduled frame, and Component ties them to a display
// container with Mount and Unmount.
package robot
