package model

// Settings are all in [0,1]. Out-of-range values are clamped at the
// Configure boundary, never rejected.
type Settings struct {
	KeyStability        float64 `json:"keyStability"`
	Adventurousness     float64 `json:"adventurousness"`
	Complexity          float64 `json:"complexity"`
	TwoChordProbability float64 `json:"twoChordProbability"`
}

// SettingsPatch is a partial update; nil fields keep their prior value.
type SettingsPatch struct {
	KeyStability        *float64 `json:"keyStability"`
	Adventurousness     *float64 `json:"adventurousness"`
	Complexity          *float64 `json:"complexity"`
	TwoChordProbability *float64 `json:"twoChordProbability"`
}

type EngineState struct {
	Key           Key    `json:"key"`
	CurrentDegree Degree `json:"currentDegree"`
	BarCount      int    `json:"barCount"`
}
