package config

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Particle Field - press and drag to push, Esc/Q: Quit"

	// Population
	NumParticles      = 200
	MaxParticleRadius = 10
	MaxParticleSpeed  = 0.5
	Friction          = 0.85

	// Pointer repulsion
	PointerRadius   = 150
	MinPushDistance = 1.0

	// Connections
	MaxConnectDistance = 100
	LineWidth          = 3

	// Paint, gradient stops along the surface diagonal
	StopNear   = 0.1
	StopMiddle = 0.5
	StopFar    = 0.9

	// Audio cue
	CueSampleRate   = 44100
	CueFrequency    = 220
	CueDurationMs   = 180
	CueVolume       = 0.25
	LevelRingSize   = 2048
	SmoothingFactor = 0.6
)
