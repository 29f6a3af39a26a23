package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/adapters/catalog"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/adapters/events"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/adapters/kv"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/adapters/storage"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/application/services"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/providers"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/infrastructure/clients/authapi"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/infrastructure/observability"
	"github.com/zatekoja/Hotelbookingdesign/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("storefront", cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the key-value store. Redis when reachable, otherwise an
	// in-memory store so the storefront still runs offline.
	var store providers.KVStore
	redisClient, err := redis.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, falling back to in-memory storage")
		store = kv.NewMemoryAdapter()
	} else {
		defer redisClient.Close()
		log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("redis client initialized")
		store = kv.NewRedisAdapter(redisClient)
	}

	// Initialize adapters
	sessionRepo := storage.NewSessionAdapter(store, cfg.App.KeyPrefix)
	reservationRepo := storage.NewReservationAdapter(store, cfg.App.KeyPrefix)
	roomRepo := catalog.NewStaticAdapter()

	bus := events.NewMemoryEventBus()
	defer bus.Close()

	// Initialize services
	sessionService := services.NewSessionService(sessionRepo, reservationRepo, bus)
	authClient := authapi.NewClient(cfg.AuthAPI.BaseURL, time.Duration(cfg.AuthAPI.TimeoutSeconds)*time.Second)
	authService := services.NewAuthService(authClient, sessionService, sessionRepo, cfg.App.AdminEmail)
	catalogService := services.NewCatalogService(roomRepo)
	dashboardService := services.NewDashboardService()

	// Log session events as they happen.
	go logEvents(ctx, bus, providers.EventChannelSession)
	go logEvents(ctx, bus, providers.EventChannelReservations)

	// Restore any persisted session before taking commands.
	sessionService.Load(ctx)
	if user := sessionService.CurrentUser(); user != nil {
		log.Info().Str("email", user.Email).Msg("session restored")
	}

	go commandLoop(ctx, cancel, &app{
		session:   sessionService,
		auth:      authService,
		catalog:   catalogService,
		dashboard: dashboardService,
	})

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
}

func logEvents(ctx context.Context, bus providers.EventBus, channel string) {
	ch, err := bus.Subscribe(ctx, channel)
	if err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("failed to subscribe")
		return
	}
	for event := range ch {
		log.Debug().
			Str("channel", channel).
			Str("type", string(event.EventType)).
			Str("email", event.UserEmail).
			Str("reservation", event.ReservationID).
			Msg("session event")
	}
}

type app struct {
	session   *services.SessionService
	auth      *services.AuthService
	catalog   *services.CatalogService
	dashboard *services.DashboardService
}

const usage = `commands:
  login <email> <password>
  register <name> <email> <password>
  logout
  rooms
  search <query>
  book <roomId> <checkIn> <checkOut>
  reservations
  cancel <reservationId>
  dashboard
  quit`

func commandLoop(ctx context.Context, cancel context.CancelFunc, a *app) {
	fmt.Println(usage)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" {
			cancel()
			return
		}
		a.dispatch(ctx, fields[0], fields[1:])
	}
	cancel()
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "login":
		if len(args) != 2 {
			fmt.Println("usage: login <email> <password>")
			return
		}
		user, err := a.auth.Login(ctx, args[0], args[1])
		if err != nil {
			fmt.Printf("login failed: %v\n", err)
			return
		}
		fmt.Printf("welcome %s (%s)\n", user.Name, user.Role)

	case "register":
		if len(args) != 3 {
			fmt.Println("usage: register <name> <email> <password>")
			return
		}
		user, err := a.auth.Register(ctx, args[0], args[1], args[2])
		if err != nil {
			fmt.Printf("register failed: %v\n", err)
			return
		}
		fmt.Printf("welcome %s\n", user.Name)

	case "logout":
		if a.session.Logout(ctx) {
			fmt.Println("logged out")
		}

	case "rooms":
		for _, room := range a.catalog.Rooms() {
			fmt.Printf("%d  %-22s $%.0f/night  %s\n", room.ID, room.Name, room.Price, strings.Join(room.Features, ", "))
		}

	case "search":
		filter := services.RoomFilter{Query: strings.Join(args, " "), MaxPrice: 1_000_000}
		for _, room := range a.catalog.Filter(filter) {
			fmt.Printf("%d  %-22s $%.0f/night\n", room.ID, room.Name, room.Price)
		}

	case "book":
		if len(args) != 3 {
			fmt.Println("usage: book <roomId> <checkIn> <checkOut>")
			return
		}
		a.book(ctx, args[0], args[1], args[2])

	case "reservations":
		for _, res := range a.session.Reservations() {
			fmt.Printf("%s  %-22s %s -> %s  $%.0f\n", res.ID, res.RoomName, res.CheckInDate, res.CheckOutDate, res.EffectiveTotal())
		}

	case "cancel":
		if len(args) != 1 {
			fmt.Println("usage: cancel <reservationId>")
			return
		}
		if a.session.CancelReservation(ctx, args[0]) {
			fmt.Println("cancelled")
		} else {
			fmt.Println("cancel failed")
		}

	case "dashboard":
		summary := a.dashboard.Summary(a.session.Reservations(), time.Now())
		fmt.Printf("revenue $%.2f, %d active of %d reservations\n", summary.TotalRevenue, summary.ActiveCount, summary.TotalCount)
		for _, entry := range summary.PopularRooms {
			fmt.Printf("  %-22s %d\n", entry.RoomName, entry.Count)
		}

	default:
		fmt.Println(usage)
	}
}

func (a *app) book(ctx context.Context, roomID, checkIn, checkOut string) {
	id, err := strconv.Atoi(roomID)
	if err != nil {
		fmt.Println("roomId must be a number")
		return
	}
	room := a.catalog.Room(id)
	if room == nil {
		fmt.Println("no such room")
		return
	}

	days := 1
	if in, err := time.Parse("2006-01-02", checkIn); err == nil {
		if out, err := time.Parse("2006-01-02", checkOut); err == nil {
			if d := int(out.Sub(in).Hours() / 24); d > 0 {
				days = d
			}
		}
	}

	res := &entities.Reservation{
		RoomID:       room.ID,
		RoomName:     room.Name,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		DaysStaying:  days,
		RoomPrice:    room.Price,
		TotalPrice:   room.Price * float64(days),
	}
	if !a.session.AddReservation(ctx, res) {
		fmt.Println("booking failed (are you logged in?)")
		return
	}
	fmt.Printf("booked %s, reservation %s\n", room.Name, res.ID)
}
