package utils

import "time"

// ParseDate interpreta datas no formato 2006-01-02 no fuso informado, string vazia retorna nil
func ParseDate(dateStr string, loc *time.Location) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
