package domain

import "time"

// timeLayout is fixed-width so stored timestamps sort lexically in every backend.
const timeLayout = "2006-01-02T15:04:05.000000Z"

func Timestamp(t time.Time) string { return t.UTC().Format(timeLayout) }

func Now() string { return Timestamp(time.Now()) }
