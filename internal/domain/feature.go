package domain

// Properties - произвольные свойства объекта геокодера. Схема не фиксирована:
// набор ключей зависит от апстрима и может меняться.
type Properties map[string]any

// Geometry - GeoJSON геометрия. Для Photon это всегда Point: [lon, lat].
type Geometry struct {
	Type        string    `json:"type,omitempty"`
	Coordinates []float64 `json:"coordinates"`
}

// Feature - одна запись результата геокодера
type Feature struct {
	Type       string     `json:"type,omitempty"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// FeatureCollection - тело ответа апстрима
type FeatureCollection struct {
	Type     string    `json:"type,omitempty"`
	Features []Feature `json:"features"`
}

// String возвращает строковое значение по ключу или nil, если ключа нет
// или значение не строка.
func (p Properties) String(key string) *string {
	v, ok := p[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}
