package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"carrental-pickup-flow/internal/config"
	"carrental-pickup-flow/internal/domain"
	"carrental-pickup-flow/internal/flow"
	"carrental-pickup-flow/internal/i18n"
	"carrental-pickup-flow/internal/logger"
	"carrental-pickup-flow/internal/security"
	"carrental-pickup-flow/internal/service"
	"carrental-pickup-flow/internal/storage"
	"carrental-pickup-flow/internal/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; environment overrides the YAML either way
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting pickup flow...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format, "language", cfg.App.Language)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Auth.SessionSecret, time.Duration(cfg.Auth.SessionExpiry)*time.Minute)

	// Initialize collaborator stubs
	authSvc, err := service.NewStubAuthService(
		cfg.Auth.ConfirmationCode,
		cfg.Auth.PhoneDigits,
		tokenManager,
		time.Duration(cfg.Auth.CheckDelayMillis)*time.Millisecond,
	)
	if err != nil {
		logger.Error("Failed to initialize auth stub", "error", err)
		log.Fatalf("Failed to initialize auth stub: %v", err)
	}
	orderSvc := service.NewMockOrderService()
	paymentSvc := service.NewStubPaymentService(time.Duration(cfg.Payment.CaptureDelayMillis) * time.Millisecond)
	vehicleSvc := service.NewStubVehicleService(
		time.Duration(cfg.Vehicle.CommandDelayMillis)*time.Millisecond,
		time.Duration(cfg.Vehicle.LocationDelayMillis)*time.Millisecond,
		cfg.Vehicle.ReturnFuelLevel,
		cfg.Vehicle.ReturnDistance,
	)

	// Initialize photo storage
	photos, err := storage.NewPhotoStore(cfg.Photos.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize photo store", "error", err, "upload_dir", cfg.Photos.UploadDir)
		log.Fatalf("Failed to initialize photo store: %v", err)
	}

	locale := i18n.Locale(cfg.App.Language)
	if !i18n.IsSupported(locale) {
		logger.Warn("Unsupported language, falling back to en", "language", cfg.App.Language)
		locale = i18n.LocaleEN
	}

	controller := flow.NewController(authSvc, orderSvc, paymentSvc, vehicleSvc, locale)

	session := &session{
		controller:       controller,
		photos:           photos,
		inspectionPhotos: domain.NewPhotoSet(cfg.Photos.InspectionCap),
		returnPhotos:     domain.NewPhotoSet(cfg.Photos.ReturnCap),
	}
	session.run(context.Background(), os.Stdin, os.Stdout)
}

// session ties the controller to the terminal: it reads one command per
// line, applies it and re-renders the current screen.
type session struct {
	controller       *flow.Controller
	photos           *storage.PhotoStore
	inspectionPhotos *domain.PhotoSet
	returnPhotos     *domain.PhotoSet
}

func (s *session) run(ctx context.Context, in *os.File, out *os.File) {
	fmt.Fprint(out, ui.Render(ui.Snapshot(s.controller, "")))
	fmt.Fprintln(out, "\n(type 'help' for commands)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		if cmd == "quit" || cmd == "exit" {
			return
		}
		if cmd == "help" {
			printHelp(out)
			continue
		}

		errMsg := s.dispatch(ctx, cmd, rest)
		fmt.Fprint(out, ui.Render(ui.Snapshot(s.controller, errMsg)))
	}
}

// dispatch applies one command and returns the inline message to render,
// empty on success.
func (s *session) dispatch(ctx context.Context, cmd, rest string) string {
	c := s.controller
	locale := c.Locale()

	var err error
	switch cmd {
	case "login":
		code, digits, _ := strings.Cut(rest, " ")
		if err = c.Authenticate(ctx, code, strings.TrimSpace(digits)); err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return i18n.T(locale, "authError")
			}
		}
	case "pay":
		if _, err = c.PayDeposit(ctx, rest); err != nil {
			if errors.Is(err, service.ErrNameMismatch) {
				return i18n.T(locale, "nameMismatchError")
			}
		}
	case "photo":
		return s.capturePhoto(rest)
	case "inspect":
		err = c.CompleteInspection()
	case "sign":
		err = c.SignContract()
	case "start":
		err = c.StartRental()
	case "return":
		err = c.BeginReturn()
	case "endtrip":
		if err = c.CompleteReturn(ctx); err == nil {
			s.discardPhotos()
		}
	case "lock":
		err = c.ToggleLock(ctx)
	case "flash":
		if err = c.SendVehicleCommand(ctx, domain.CommandFlash); err == nil {
			return i18n.T(locale, "actionSent")
		}
	case "honk":
		if err = c.SendVehicleCommand(ctx, domain.CommandHonk); err == nil {
			return i18n.T(locale, "actionSent")
		}
	case "goto":
		view, ok := parseView(rest)
		if !ok {
			return fmt.Sprintf("unknown view %q", rest)
		}
		c.Navigate(view)
	case "lang":
		l := i18n.Locale(rest)
		if !i18n.IsSupported(l) {
			return fmt.Sprintf("unsupported language %q (supported: %v)", rest, i18n.Supported())
		}
		c.SetLocale(l)
	default:
		return fmt.Sprintf("unknown command %q", cmd)
	}

	if err != nil {
		return err.Error()
	}
	return ""
}

// capturePhoto stores a photo into the set belonging to the current
// screen. The argument is a file path when it exists, otherwise the
// photo is synthesized from its name.
func (s *session) capturePhoto(name string) string {
	if name == "" {
		return "usage: photo <name-or-path>"
	}

	set := s.inspectionPhotos
	if s.controller.View() == domain.ViewReturn {
		set = s.returnPhotos
	}

	var photo domain.Photo
	if file, openErr := os.Open(name); openErr == nil {
		defer file.Close()
		photo, openErr = s.photos.Capture(filepath.Base(name), file)
		if openErr != nil {
			return openErr.Error()
		}
	} else {
		synthesized, err := s.photos.Capture(name, strings.NewReader(name))
		if err != nil {
			return err.Error()
		}
		photo = synthesized
	}

	if err := set.Add(photo); err != nil {
		// roll the stored file back so the store only keeps what the
		// set accepted
		_ = s.photos.Discard(photo)
		return err.Error()
	}
	logger.Debug("Photo captured", "id", photo.ID, "name", photo.Name, "count", set.Len(), "cap", set.Capacity())
	return ""
}

// discardPhotos drops the session's photo files once the trip is over.
func (s *session) discardPhotos() {
	for _, p := range s.inspectionPhotos.Photos() {
		_ = s.photos.Discard(p)
		s.inspectionPhotos.Remove(p.ID)
	}
	for _, p := range s.returnPhotos.Photos() {
		_ = s.photos.Discard(p)
		s.returnPhotos.Remove(p.ID)
	}
}

func parseView(name string) (domain.View, bool) {
	views := map[string]domain.View{
		"overview":    domain.ViewOverview,
		"deposit":     domain.ViewDeposit,
		"inspection":  domain.ViewInspection,
		"contract":    domain.ViewContract,
		"reservation": domain.ViewReservationDetails,
		"vehicle":     domain.ViewVehicleStatus,
		"return":      domain.ViewReturn,
	}
	v, ok := views[strings.ToLower(name)]
	return v, ok
}

func printHelp(out *os.File) {
	fmt.Fprintln(out, `commands:
  login <code> <digits>   check in to the reservation
  pay <cardholder name>   pay the security deposit
  photo <name-or-path>    capture an inspection/return photo
  inspect                 submit the vehicle inspection
  sign                    sign the rental contract
  start                   start the rental
  lock | flash | honk     remote vehicle controls
  return                  begin the return flow
  endtrip                 confirm the return and end the trip
  goto <screen>           overview|deposit|inspection|contract|reservation|vehicle|return
  lang <code>             en|zh-TW|ja|ko|th
  quit`)
}
