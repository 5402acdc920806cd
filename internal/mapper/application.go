package mapper

import (
	"github.com/bjarke-xyz/applications-api/internal/domain"
	"github.com/samber/lo"
)

// ApplicationDTO is the wire shape of an application. It is both the create
// payload and the partial update payload: a nil field is left untouched.
type ApplicationDTO struct {
	ID            int     `json:"id" validate:"gte=0"`
	URL           *string `json:"url" validate:"required,min=1"`
	PathLocal     *string `json:"pathLocal" validate:"required,min=1"`
	DebuggingMode *bool   `json:"debuggingMode"`
}

func ToDTO(app domain.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:            app.ID,
		URL:           lo.ToPtr(app.URL),
		PathLocal:     lo.ToPtr(app.PathLocal),
		DebuggingMode: lo.ToPtr(app.DebuggingMode),
	}
}

func ToDTOs(apps []domain.Application) []ApplicationDTO {
	return lo.Map(apps, func(app domain.Application, _ int) ApplicationDTO {
		return ToDTO(app)
	})
}

// Merge returns dst with the fields present in src copied over it.
// Empty strings count as absent, and so does a non-positive id, which keeps
// a create payload from overriding a store assigned key.
func Merge(dst domain.Application, src ApplicationDTO) domain.Application {
	if src.ID > 0 {
		dst.ID = src.ID
	}
	if lo.FromPtr(src.URL) != "" {
		dst.URL = *src.URL
	}
	if lo.FromPtr(src.PathLocal) != "" {
		dst.PathLocal = *src.PathLocal
	}
	if src.DebuggingMode != nil {
		dst.DebuggingMode = *src.DebuggingMode
	}
	return dst
}

func ToEntity(src ApplicationDTO) domain.Application {
	return Merge(domain.Application{}, src)
}
