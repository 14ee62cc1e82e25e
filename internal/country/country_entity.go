package country

import "time"

// Country is a catalog entry referenced by employee_personal_infos.country_id.
type Country struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:uq_country_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Country) TableName() string {
	return "countries"
}
