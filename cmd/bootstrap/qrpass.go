package bootstrap

import (
	"campground/internal/pkg/config"
	"campground/internal/pkg/qrpass"

	"go.uber.org/fx"
)

var PassModule = fx.Module("qrpass",
	fx.Provide(
		NewPassIssuer,
	),
)

func NewPassIssuer(cfg config.Config) *qrpass.Issuer {
	return qrpass.NewIssuer(cfg.Pass.Secret, cfg.Pass.Validity)
}
