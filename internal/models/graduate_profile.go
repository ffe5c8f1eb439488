package models

import "time"

// GraduateProfile holds the contact and demographic section of the tracer
// survey. One row per user, created lazily on first submission or edit.
type GraduateProfile struct {
	UserID           string `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	PermanentAddress string `gorm:"column:permanent_address;type:text" json:"permanent_address"`
	Telephone        string `gorm:"column:telephone;type:text" json:"telephone"`
	MobileNumber     string `gorm:"column:mobile_number;type:text" json:"mobile_number"`
	CivilStatus      string `gorm:"column:civil_status;type:text" json:"civil_status"`
	Sex              string `gorm:"column:sex;type:text" json:"sex"`
	Birthday         string `gorm:"column:birthday;type:text" json:"birthday"`
	RegionOfOrigin   string `gorm:"column:region_of_origin;type:text" json:"region_of_origin"`
	Province         string `gorm:"column:province;type:text" json:"province"`
	LocationType     string `gorm:"column:location_type;type:text" json:"location_type"` // City|Municipality

	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (GraduateProfile) TableName() string { return "graduate_profiles" }
