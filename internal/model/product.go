package model

// Product is a tracked URL as the backend reports it. Optional fields are
// pointers so that null and absent survive JSON decoding unchanged.
//
// LastChecked stays a raw string: the backend emits timestamps without a
// timezone marker and interpreting them is a display concern, not a data one.
type Product struct {
	ID                        int64    `json:"id"`
	Name                      string   `json:"name"`
	URL                       string   `json:"url"`
	UserID                    int64    `json:"userId"`
	TargetPrice               *float64 `json:"targetPrice"`
	CurrentPrice              *float64 `json:"currentPrice"`
	LastChecked               *string  `json:"lastChecked"`
	EmailNotificationsEnabled *bool    `json:"emailNotificationsEnabled"`
}

// EmailEnabled reports whether email alerts are on for the Product.
// The backend defaults the field to true, so a missing value counts as on.
func (p Product) EmailEnabled() bool {
	return p.EmailNotificationsEnabled == nil || *p.EmailNotificationsEnabled
}
