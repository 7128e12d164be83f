package proto

import "time"

// Dates travel as YYYY-MM-DD strings; an empty string means no date.

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserId string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (x *RefreshTokenResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *RefreshTokenResponse) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

// ArtworkMeta accompanies an upload. BirthDate overrides the birth date of
// the selected child when computing the age label.
type ArtworkMeta struct {
	ShotAtDate string   `json:"shot_at_date,omitempty"`
	ChildId    string   `json:"child_id,omitempty"`
	BirthDate  string   `json:"birth_date,omitempty"`
	Memo       string   `json:"memo,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

type Artwork struct {
	Id            string    `json:"id"`
	StoragePath   string    `json:"storage_path"`
	ShotAtDate    string    `json:"shot_at_date,omitempty"`
	AgeAtCreation string    `json:"age_at_creation,omitempty"`
	ChildId       string    `json:"child_id,omitempty"`
	Memo          string    `json:"memo,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type UploadArtworkRequest struct {
	Image []byte       `json:"image"`
	Meta  *ArtworkMeta `json:"meta,omitempty"`
}

func (x *UploadArtworkRequest) GetMeta() *ArtworkMeta {
	if x != nil && x.Meta != nil {
		return x.Meta
	}
	return &ArtworkMeta{}
}

type UploadArtworkResponse struct {
	Artwork *Artwork `json:"artwork"`
}

// RetryArtworkRowRequest commits the row of an upload whose blob was stored
// at StoragePath while its row insert failed.
type RetryArtworkRowRequest struct {
	StoragePath string       `json:"storage_path"`
	Meta        *ArtworkMeta `json:"meta,omitempty"`
}

func (x *RetryArtworkRowRequest) GetMeta() *ArtworkMeta {
	if x != nil && x.Meta != nil {
		return x.Meta
	}
	return &ArtworkMeta{}
}

type RetryArtworkRowResponse struct {
	Artwork *Artwork `json:"artwork"`
}

type DeleteArtworkRequest struct {
	Id string `json:"id"`
}

type DeleteArtworkResponse struct{}

type ListGalleryRequest struct {
	ChildId string `json:"child_id,omitempty"`
}

// GalleryItem is one artwork of the owner gallery. Url is empty when the
// blob is not Available.
type GalleryItem struct {
	Artwork    *Artwork `json:"artwork"`
	ChildName  string   `json:"child_name,omitempty"`
	ChildColor string   `json:"child_color,omitempty"`
	ChildKnown bool     `json:"child_known"`
	Url        string   `json:"url,omitempty"`
	Available  bool     `json:"available"`
}

type ListGalleryResponse struct {
	Items []*GalleryItem `json:"items"`
}

type ListSharedGalleryRequest struct {
	Token string `json:"token"`
}

// SharedArtwork is an artwork as seen through a share link.
type SharedArtwork struct {
	Id            string    `json:"id"`
	Url           string    `json:"url,omitempty"`
	Available     bool      `json:"available"`
	ShotAtDate    string    `json:"shot_at_date,omitempty"`
	AgeAtCreation string    `json:"age_at_creation,omitempty"`
	Memo          string    `json:"memo,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListSharedGalleryResponse struct {
	Items []*SharedArtwork `json:"items"`
}

type ShareLink struct {
	Token     string    `json:"token"`
	Label     string    `json:"label,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type GetShareLinkRequest struct{}

type GetShareLinkResponse struct {
	Link *ShareLink `json:"link"`
}

func (x *GetShareLinkResponse) GetLink() *ShareLink {
	if x != nil {
		return x.Link
	}
	return nil
}

type RotateShareLinkRequest struct {
	Label string `json:"label,omitempty"`
}

type RotateShareLinkResponse struct {
	Link *ShareLink `json:"link"`
}

func (x *RotateShareLinkResponse) GetLink() *ShareLink {
	if x != nil {
		return x.Link
	}
	return nil
}

type RevokeShareLinkRequest struct{}

type RevokeShareLinkResponse struct {
	Revoked int64 `json:"revoked"`
}

type ListShareHistoryRequest struct{}

type ListShareHistoryResponse struct {
	Links []*ShareLink `json:"links"`
}

type Child struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date,omitempty"`
	Color     string `json:"color"`
}

type CreateChildRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date,omitempty"`
	Color     string `json:"color,omitempty"`
}

type CreateChildResponse struct {
	Child *Child `json:"child"`
}

type ListChildrenRequest struct{}

type ListChildrenResponse struct {
	Children []*Child `json:"children"`
}

type DeleteChildRequest struct {
	Id string `json:"id"`
}

type DeleteChildResponse struct{}
