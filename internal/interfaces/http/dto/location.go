// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"cineplan-api/internal/domain/entity"
)

// CreateLocationRequest 创建场地请求
type CreateLocationRequest struct {
	Name      string   `json:"name" binding:"required,max=255"`
	Zone      string   `json:"zone" binding:"max=64"`
	Address   string   `json:"address" binding:"max=512"`
	Latitude  *float64 `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
	Notes     string   `json:"notes" binding:"max=5000"`
}

// ToLocationEntity 转换为场地实体
func (r *CreateLocationRequest) ToLocationEntity(projectID string) *entity.Location {
	return &entity.Location{
		ProjectID: projectID,
		Name:      r.Name,
		Zone:      r.Zone,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Notes:     r.Notes,
	}
}

// UpdateLocationRequest 更新场地请求
type UpdateLocationRequest struct {
	Name      *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Zone      *string  `json:"zone,omitempty" binding:"omitempty,max=64"`
	Address   *string  `json:"address,omitempty" binding:"omitempty,max=512"`
	Latitude  *float64 `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
	Notes     *string  `json:"notes,omitempty" binding:"omitempty,max=5000"`
}

// ApplyTo 将非空字段应用到场地实体
func (r *UpdateLocationRequest) ApplyTo(l *entity.Location) {
	if r.Name != nil {
		l.Name = *r.Name
	}
	if r.Zone != nil {
		l.Zone = *r.Zone
	}
	if r.Address != nil {
		l.Address = *r.Address
	}
	if r.Latitude != nil {
		l.Latitude = r.Latitude
	}
	if r.Longitude != nil {
		l.Longitude = r.Longitude
	}
	if r.Notes != nil {
		l.Notes = *r.Notes
	}
}

// LocationResponse 场地响应
type LocationResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Zone      string    `json:"zone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationListResponse 场地列表响应
type LocationListResponse struct {
	Locations []*LocationResponse `json:"locations"`
}

// ToLocationResponse 将领域实体转换为响应 DTO
func ToLocationResponse(l *entity.Location) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{
		ID:        l.ID,
		ProjectID: l.ProjectID,
		Name:      l.Name,
		Zone:      l.Zone,
		Address:   l.Address,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// ToLocationListResponse 将实体列表转换为列表响应
func ToLocationListResponse(locations []*entity.Location) *LocationListResponse {
	out := make([]*LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, ToLocationResponse(l))
	}
	return &LocationListResponse{Locations: out}
}
