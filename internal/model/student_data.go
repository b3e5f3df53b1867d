package model

import "time"

// StudentData 某个学生在一次请求内的只读学业快照
type StudentData struct {
	UserID      string
	Courses     []Course
	Events      []AcademicEvent
	LastUpdated time.Time
}
