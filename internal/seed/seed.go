package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	roomModel "hostel/internal/domains/room/model"
	roomRepo "hostel/internal/domains/room/repository"
	userModel "hostel/internal/domains/user/model"
	userRepo "hostel/internal/domains/user/repository"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/password"
	"hostel/shared/timezone"
)

var ErrNoAdminCredentials = errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must both be set")

type Result struct {
	RoomsCreated int
	RoomsSkipped int
	AdminCreated bool
}

// Seeder loads the room catalogue and the first superadmin. Rerunning it is safe: rooms
// already present by (category, location) and an existing admin email are left alone.
type Seeder struct {
	rooms      roomRepo.Room
	users      userRepo.User
	transactor postgres.Transactor
	cfg        *config.Config
	otel       otel.Otel
}

func New(rooms roomRepo.Room, users userRepo.User, transactor postgres.Transactor, cfg *config.Config, otel otel.Otel) *Seeder {
	return &Seeder{
		rooms:      rooms,
		users:      users,
		transactor: transactor,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *Seeder) Run(ctx context.Context) (res Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.admin(ctx)
	if err != nil {
		return res, err
	}

	var missing []roomModel.Room

	for _, room := range Catalogue() {
		exists, err := s.rooms.Exist(ctx, gDto.And(
			gDto.Eq(roomModel.TableName, roomModel.FieldCategory, room.Category),
			gDto.Eq(roomModel.TableName, roomModel.FieldLocation, room.Location),
		))
		if err != nil {
			return res, fmt.Errorf("failed to check room %s at %s: %w", room.Category, room.Location, err)
		}

		if exists {
			res.RoomsSkipped++

			continue
		}

		room.ID = uuid.NewString()
		room.Metadata = gModel.Stamp(constant.ContextSystem, timezone.Now())
		missing = append(missing, room)
	}

	err = s.transactor.WithTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if len(missing) > 0 {
			if err := s.rooms.InsertBulkTx(ctx, sqltx, missing); err != nil {
				return fmt.Errorf("failed to insert rooms: %w", err)
			}
		}

		if admin != nil {
			if err := s.users.InsertTx(ctx, sqltx, *admin); err != nil {
				return fmt.Errorf("failed to insert admin: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("seed transaction failed")

		return res, fmt.Errorf("failed to seed: %w", err)
	}

	res.RoomsCreated = len(missing)
	res.AdminCreated = admin != nil

	return res, nil
}

// admin returns the superadmin to create, or nil when the email is already registered.
func (s *Seeder) admin(ctx context.Context) (*userModel.User, error) {
	email, plain := s.cfg.Seed.AdminEmail, s.cfg.Seed.AdminPassword
	if email == constant.Empty || plain == constant.Empty {
		return nil, ErrNoAdminCredentials
	}

	exists, err := s.users.Exist(ctx, gDto.And(gDto.Eq(userModel.TableName, userModel.FieldEmail, email)))
	if err != nil {
		return nil, fmt.Errorf("failed to check admin: %w", err)
	}

	if exists {
		log.Info().Str("email", email).Msg("admin already exists, skipping")

		return nil, nil
	}

	if err := password.CheckStrength(plain); err != nil {
		return nil, fmt.Errorf("admin password: %w", err)
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &userModel.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashed,
		Role:     constant.RoleSuperAdmin,
		FullName: "Administrator",
		Active:   true,
		Metadata: gModel.Stamp(constant.ContextSystem, timezone.Now()),
	}, nil
}
