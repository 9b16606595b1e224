package domain

// SearchQuery - текстовый поиск. Limit и Lang опциональны и не подставляются
// по умолчанию, если не заданы.
type SearchQuery struct {
	Query string
	Limit *int
	Lang  *string
}

// LocationQuery - текстовый поиск с приоритетом результатов рядом с точкой
type LocationQuery struct {
	Query string
	Lat   float64
	Lon   float64
}

// ReverseQuery - обратное геокодирование точки
type ReverseQuery struct {
	Lat float64
	Lon float64
}
