package view

import (
	"strings"
	"sync"

	"github.com/trip-dashboard/internal/domain"
)

// FormValues - сырые значения полей фильтра, как их ввел пользователь
type FormValues struct {
	Start        string `json:"start" form:"start"`
	End          string `json:"end" form:"end"`
	Vendor       string `json:"vendor" form:"vendor"`
	PassengerMin string `json:"pmin" form:"pmin"`
	PassengerMax string `json:"pmax" form:"pmax"`
}

// FilterQuery строит фильтр: пустые поля не задаются, остальные берутся как введены
func (v FormValues) FilterQuery() domain.FilterQuery {
	return domain.FilterQuery{
		Start:        strings.TrimSpace(v.Start),
		End:          strings.TrimSpace(v.End),
		VendorID:     optional(v.Vendor),
		PassengerMin: optional(v.PassengerMin),
		PassengerMax: optional(v.PassengerMax),
	}
}

func optional(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

// Form - поля фильтра дашборда
type Form struct {
	mu     sync.RWMutex
	values FormValues
}

func NewForm(defaults FormValues) *Form {
	return &Form{values: defaults}
}

func (f *Form) Set(v FormValues) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = v
}

func (f *Form) Values() FormValues {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values
}
