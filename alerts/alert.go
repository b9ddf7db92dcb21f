package alerts

import "time"

// GTFS-RT cause categories, stored as enum names.
const (
	CauseUnknown          = "UNKNOWN_CAUSE"
	CauseOther            = "OTHER_CAUSE"
	CauseTechnicalProblem = "TECHNICAL_PROBLEM"
	CauseStrike           = "STRIKE"
	CauseDemonstration    = "DEMONSTRATION"
	CauseAccident         = "ACCIDENT"
	CauseHoliday          = "HOLIDAY"
	CauseWeather          = "WEATHER"
	CauseMaintenance      = "MAINTENANCE"
	CauseConstruction     = "CONSTRUCTION"
	CausePoliceActivity   = "POLICE_ACTIVITY"
	CauseMedicalEmergency = "MEDICAL_EMERGENCY"
)

// GTFS-RT effect categories, stored as enum names.
const (
	EffectNoService          = "NO_SERVICE"
	EffectReducedService     = "REDUCED_SERVICE"
	EffectSignificantDelays  = "SIGNIFICANT_DELAYS"
	EffectDetour             = "DETOUR"
	EffectAdditionalService  = "ADDITIONAL_SERVICE"
	EffectModifiedService    = "MODIFIED_SERVICE"
	EffectOther              = "OTHER_EFFECT"
	EffectUnknown            = "UNKNOWN_EFFECT"
	EffectStopMoved          = "STOP_MOVED"
	EffectNoEffect           = "NO_EFFECT"
	EffectAccessibilityIssue = "ACCESSIBILITY_ISSUE"
)

// Alert is the persisted row for one feed entity. RouteIDs and StopIDs are
// comma-joined strings rather than relations; the existing reporting
// consumers read them in that form. A nil TimeEnd means open-ended.
type Alert struct {
	ID              string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	TimeStart       time.Time  `gorm:"not null;index" json:"time_start"`
	TimeEnd         *time.Time `gorm:"index" json:"time_end"`
	Cause           string     `gorm:"type:varchar(32);not null" json:"cause"`
	Effect          string     `gorm:"type:varchar(32);not null" json:"effect"`
	HeaderText      string     `gorm:"type:text" json:"header_text"`
	DescriptionText string     `gorm:"type:text" json:"description_text"`
	URL             string     `gorm:"type:text" json:"url"`
	RouteIDs        string     `gorm:"type:text" json:"route_ids"`
	StopIDs         string     `gorm:"type:text" json:"stop_ids"`
	IsComplement    bool       `gorm:"not null;index" json:"is_complement"`
	ParentAlertID   *string    `gorm:"type:varchar(64);index" json:"parent_alert_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `gorm:"index" json:"updated_at"`
}

func (Alert) TableName() string {
	return "alerts"
}

// NormalizeWindow enforces the active-window invariant: an end time earlier
// than the start is dropped, leaving the alert open-ended.
func (a *Alert) NormalizeWindow() {
	if a.TimeEnd != nil && a.TimeEnd.Before(a.TimeStart) {
		a.TimeEnd = nil
	}
}
