package domain

// SearchInput is the GET /issues query string after parsing
type SearchInput struct {
	Q         string   `query:"q" validate:"omitempty,max=256"`
	Language  string   `query:"language" validate:"omitempty,max=64,noquote"`
	Labels    []string `query:"labels" validate:"max=20,dive,required,max=50,noquote"`
	UpdatedAt string   `query:"updatedAt" validate:"omitempty,datetime=2006-01-02"`
	Page      int      `query:"page" validate:"max=10000"`
}

// Filters converts the input; a non-positive Page means page 1
func (in SearchInput) Filters() Filters {
	return Filters{
		Keyword:   in.Q,
		Language:  in.Language,
		Labels:    in.Labels,
		UpdatedAt: in.UpdatedAt,
		Page:      in.Page,
	}
}
