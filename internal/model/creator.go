package model

// CollabOptions mirrors the collaboration types a creator accepts. Nil means
// everything is on the table.
type CollabOptions struct {
	FreeSample bool `json:"freeSample"`
	PaidCollab bool `json:"paidCollab"`
	Retainer   bool `json:"retainer"`
}

type Creator struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Avatar        string         `json:"avatar"`
	TikTokHandle  string         `json:"tiktokHandle"`
	Followers     string         `json:"followers"`
	GMV           string         `json:"gmv,omitempty"`
	Category      string         `json:"category"`
	Niche         []string       `json:"niche"`
	IsVerified    bool           `json:"isVerified"`
	ExampleVideos []string       `json:"exampleVideos,omitempty"`
	CollabOptions *CollabOptions `json:"collabOptions,omitempty"`
}

// FeaturedCreator is the trimmed-down shape shown on the home screen slider.
type FeaturedCreator struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	Followers    string `json:"followers"`
	TikTokHandle string `json:"tiktokHandle"`
	IsVerified   bool   `json:"isVerified"`
	Specialty    string `json:"specialty"`
}

// Featured converts a full creator record into its slider form.
func (c Creator) Featured() FeaturedCreator {
	return FeaturedCreator{
		ID:           c.ID,
		Name:         c.Name,
		Avatar:       c.Avatar,
		Followers:    c.Followers,
		TikTokHandle: c.TikTokHandle,
		IsVerified:   c.IsVerified,
		Specialty:    c.Category,
	}
}

// ExclusiveCampaign is a premium partnership offer from its own sheet. These
// are plain links, no admin override merge applies.
type ExclusiveCampaign struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Commission  string `json:"commission,omitempty"`
	Link        string `json:"link,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}
