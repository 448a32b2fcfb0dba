package cache

import "time"

// DataWithLogicalExpire wraps a cached value with a logical expiry.
// Expired values are still served while a background rebuild runs.
type DataWithLogicalExpire struct {
	Data      any       `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`
	CreatedAt time.Time `json:"created_at"` // for debugging
}

// IsLogicalExpired checks whether the value is logically expired.
func (d *DataWithLogicalExpire) IsLogicalExpired() bool {
	return time.Now().After(d.ExpireAt)
}

// NewDataWithLogicalExpire wraps data with a logical TTL.
func NewDataWithLogicalExpire(data any, ttl time.Duration) *DataWithLogicalExpire {
	now := time.Now()
	return &DataWithLogicalExpire{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
