package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"backoffice/pkg/cache"
)

// Dilar is a money-changing agent the business trades with
type Dilar struct {
	ID            string    `json:"id"`
	OwnerName     string    `json:"ownerName"`
	ContactNo     string    `json:"contactNo"`
	TradeName     string    `json:"tradeName"`
	TradeLocation string    `json:"tradeLocation"`
	NID           string    `json:"nid"`
	Logo          string    `json:"logo"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DilarFilters narrows ListDilars. IsActive nil means both states.
type DilarFilters struct {
	IsActive *bool
	Search   string
}

func (f DilarFilters) toMap() map[string]string {
	m := map[string]string{"search": f.Search}
	if f.IsActive != nil {
		m["is_active"] = strconv.FormatBool(*f.IsActive)
	}
	return m
}

// CreateDilarRequest registers a dilar
type CreateDilarRequest struct {
	OwnerName     string `json:"ownerName"`
	ContactNo     string `json:"contactNo"`
	TradeName     string `json:"tradeName,omitempty"`
	TradeLocation string `json:"tradeLocation,omitempty"`
	NID           string `json:"nid,omitempty"`
	Logo          string `json:"logo,omitempty"`
}

// UpdateDilarRequest updates a dilar. Nil fields are left untouched.
type UpdateDilarRequest struct {
	OwnerName     *string `json:"ownerName,omitempty"`
	ContactNo     *string `json:"contactNo,omitempty"`
	TradeName     *string `json:"tradeName,omitempty"`
	TradeLocation *string `json:"tradeLocation,omitempty"`
	NID           *string `json:"nid,omitempty"`
	Logo          *string `json:"logo,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// ListDilars returns dilars matching the filters
func (c *Client) ListDilars(ctx context.Context, filters DilarFilters) ([]Dilar, error) {
	fm := filters.toMap()
	key := cache.BuildFilterKey(keyDilars, fm)

	v, err := c.get(ctx, key, "/api/v1/dilars"+buildQuery(fm), slowStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		return nil, err
	}

	var dilars []Dilar
	if err := decodeList(*v.(*[]byte), &dilars); err != nil {
		return nil, err
	}
	return dilars, nil
}

// GetDilar returns one dilar by id. An empty id returns immediately without
// a request.
func (c *Client) GetDilar(ctx context.Context, id string) (*Dilar, error) {
	if id == "" {
		return nil, nil
	}

	key := cache.BuildKey(keyDilars, id)
	v, err := c.get(ctx, key, "/api/v1/dilars/"+id, slowStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		return nil, err
	}

	var dilar Dilar
	if err := decodeSingle(*v.(*[]byte), &dilar); err != nil {
		return nil, err
	}
	return &dilar, nil
}

// CreateDilar registers a dilar and invalidates the dilar caches
func (c *Client) CreateDilar(ctx context.Context, req CreateDilarRequest) (*Dilar, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodPost, "/api/v1/dilars", req, &raw); err != nil {
		return nil, err
	}
	c.invalidate(keyDilars)

	var dilar Dilar
	if err := decodeSingle(raw, &dilar); err != nil {
		return nil, err
	}
	return &dilar, nil
}

// UpdateDilar applies a partial update to a dilar
func (c *Client) UpdateDilar(ctx context.Context, id string, req UpdateDilarRequest) (*Dilar, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodPut, "/api/v1/dilars/"+id, req, &raw); err != nil {
		return nil, err
	}
	c.invalidate(keyDilars)

	var dilar Dilar
	if err := decodeSingle(raw, &dilar); err != nil {
		return nil, err
	}
	return &dilar, nil
}

// DeactivateDilar soft-deletes a dilar. Historical exchanges keep their
// dilar reference.
func (c *Client) DeactivateDilar(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/dilars/"+id, nil, nil); err != nil {
		return err
	}
	c.invalidate(keyDilars)
	return nil
}
