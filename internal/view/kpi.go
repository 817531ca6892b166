package view

import "sync"

// KPIValues - тексты четырех KPI
type KPIValues struct {
	Trips    string `json:"trips"`
	Distance string `json:"distance"`
	Fare     string `json:"fare"`
	Time     string `json:"time"`
}

// KPIPanel - текстовые поля с KPI
type KPIPanel struct {
	mu     sync.RWMutex
	values KPIValues
}

func NewKPIPanel() *KPIPanel {
	return &KPIPanel{}
}

func (p *KPIPanel) SetKPIs(v KPIValues) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values = v
}

func (p *KPIPanel) KPIs() KPIValues {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values
}
