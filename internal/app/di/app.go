package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "youthcup_backend/internal/feature/auth/adapters"
	authhandler "youthcup_backend/internal/feature/auth/transport/handler"
	authusecase "youthcup_backend/internal/feature/auth/usecase"
	checkoutadapters "youthcup_backend/internal/feature/checkout/adapters"
	checkouthandler "youthcup_backend/internal/feature/checkout/transport/handler"
	checkoutusecase "youthcup_backend/internal/feature/checkout/usecase"
	eventadapters "youthcup_backend/internal/feature/event/adapters"
	eventhandler "youthcup_backend/internal/feature/event/transport/handler"
	eventusecase "youthcup_backend/internal/feature/event/usecase"
	gameadapters "youthcup_backend/internal/feature/game/adapters"
	gamehandler "youthcup_backend/internal/feature/game/transport/handler"
	gameusecase "youthcup_backend/internal/feature/game/usecase"
	playeradapters "youthcup_backend/internal/feature/player/adapters"
	playerhandler "youthcup_backend/internal/feature/player/transport/handler"
	playerusecase "youthcup_backend/internal/feature/player/usecase"
	productadapters "youthcup_backend/internal/feature/product/adapters"
	producthandler "youthcup_backend/internal/feature/product/transport/handler"
	productusecase "youthcup_backend/internal/feature/product/usecase"
	standingsadapters "youthcup_backend/internal/feature/standings/adapters"
	standingshandler "youthcup_backend/internal/feature/standings/transport/handler"
	standingsusecase "youthcup_backend/internal/feature/standings/usecase"
	teamadapters "youthcup_backend/internal/feature/team/adapters"
	teamhandler "youthcup_backend/internal/feature/team/transport/handler"
	teamusecase "youthcup_backend/internal/feature/team/usecase"
	"youthcup_backend/internal/platform/cache"
	"youthcup_backend/internal/platform/config"
	jwtmw "youthcup_backend/internal/platform/jwt"
	"youthcup_backend/internal/platform/storage"
	"youthcup_backend/internal/shared/validation"
)

// featuredCacheTTL bounds staleness if a write bypasses the decorator.
const featuredCacheTTL = 24 * time.Hour

// Handlers bundles every HTTP handler plus the access token parser used by
// the auth middleware.
type Handlers struct {
	AccessTokens jwtmw.TokenParser

	Auth      *authhandler.AuthHandler
	Teams     *teamhandler.TeamHandler
	Players   *playerhandler.PlayerHandler
	Games     *gamehandler.GameHandler
	Events    *eventhandler.EventHandler
	Standings *standingshandler.StandingsHandler
	Products  *producthandler.ProductHandler
	Checkout  *checkouthandler.CheckoutHandler
}

// NewHandlers wires repositories, usecases and handlers. rdb may be nil.
func NewHandlers(ctx context.Context, cfg config.Config, db *gorm.DB, rdb *redis.Client, assets *storage.LocalStore) *Handlers {
	v := validation.New()
	mailer := NewMailer(cfg)

	access := jwtmw.NewGenerator(cfg.AccessTokenSecret, cfg.AccessTokenTTL, jwtmw.TypeAccess)
	refresh := jwtmw.NewGenerator(cfg.RefreshTokenSecret, cfg.RefreshTokenTTL, jwtmw.TypeRefresh)
	authUC := authusecase.NewAuthUsecase(
		authadapters.NewUserGorm(db), access, refresh,
		NewRefreshTokenStore(ctx, rdb, db), mailer, cfg.RefreshTokenTTL,
	)

	// 商品リポジトリはおすすめ商品キャッシュでラップ
	products := cache.NewCachingProductRepository(rdb, featuredCacheTTL, productadapters.NewProductGorm(db), cache.FeaturedProductsKey)
	events := eventadapters.NewEventGorm(db)

	return &Handlers{
		AccessTokens: access,
		Auth:         authhandler.NewAuthHandler(authUC),
		Teams:        teamhandler.NewTeamHandler(teamusecase.NewTeamUsecase(teamadapters.NewTeamGorm(db), assets, v)),
		Players:      playerhandler.NewPlayerHandler(playerusecase.NewPlayerUsecase(playeradapters.NewPlayerGorm(db), v)),
		Games:        gamehandler.NewGameHandler(gameusecase.NewGameUsecase(gameadapters.NewGameGorm(db), v)),
		Events:       eventhandler.NewEventHandler(eventusecase.NewEventUsecase(events, events, v)),
		Standings:    standingshandler.NewStandingsHandler(standingsusecase.NewStandingsUsecase(standingsadapters.NewStandingsGorm(db))),
		Products:     producthandler.NewProductHandler(productusecase.NewProductUsecase(products, assets, v)),
		Checkout:     checkouthandler.NewCheckoutHandler(checkoutusecase.NewCheckoutUsecase(checkoutadapters.NewOrderGorm(db), products, mailer)),
	}
}
