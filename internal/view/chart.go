package view

import "sync"

type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
)

// ChartPoint - подпись и значение одной точки серии
type ChartPoint struct {
	Label string
	Value float64
}

// ChartState - снимок графика для рендеринга
type ChartState struct {
	ID       string    `json:"id"`
	Kind     ChartKind `json:"type"`
	Label    string    `json:"label"`
	Fill     bool      `json:"fill"`
	Labels   []string  `json:"labels"`
	Data     []float64 `json:"data"`
	Revision uint64    `json:"revision"`
}

// Chart - график с одной серией данных.
// Labels и Data всегда одной длины.
type Chart struct {
	mu    sync.RWMutex
	state ChartState
}

func NewChart(id string, kind ChartKind, label string, fill bool) *Chart {
	return &Chart{state: ChartState{
		ID:     id,
		Kind:   kind,
		Label:  label,
		Fill:   fill,
		Labels: []string{},
		Data:   []float64{},
	}}
}

// Replace заменяет все подписи и данные и запрашивает перерисовку
func (c *Chart) Replace(points []ChartPoint) {
	labels := make([]string, len(points))
	data := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Label
		data[i] = p.Value
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Labels = labels
	c.state.Data = data
	c.state.Revision++
}

func (c *Chart) State() ChartState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.state
	s.Labels = append([]string(nil), c.state.Labels...)
	s.Data = append([]float64(nil), c.state.Data...)
	if s.Labels == nil {
		s.Labels = []string{}
	}
	if s.Data == nil {
		s.Data = []float64{}
	}
	return s
}
