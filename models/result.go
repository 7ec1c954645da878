package models

// Result is one horse's finish in a completed race.
type Result struct {
	HorseID    int     `json:"horseId"`
	HorseName  string  `json:"horseName"`
	HorseColor string  `json:"horseColor"`
	Time       float64 `json:"time"`
	Position   int     `json:"position"`
	Speed      float64 `json:"speed"`
}

// RoundResult groups the results of one completed round.
type RoundResult struct {
	Round    int      `json:"roundNumber"`
	Distance int      `json:"distance"`
	Results  []Result `json:"results"`
}
