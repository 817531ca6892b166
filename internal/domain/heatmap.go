package domain

import (
	"encoding/json"
	"fmt"
)

// HeatPoint - точка тепловой карты, на проводе пара [lat, lng]
type HeatPoint struct {
	Lat float64
	Lng float64
}

func (p *HeatPoint) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("heat point: %w", err)
	}
	if len(pair) < 2 {
		return fmt.Errorf("heat point: expected [lat, lng], got %d values", len(pair))
	}
	p.Lat, p.Lng = pair[0], pair[1]
	return nil
}

func (p HeatPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lat, p.Lng})
}
