package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Leganyst/barber-booking/internal/booking"
	"github.com/Leganyst/barber-booking/internal/config"
	"github.com/Leganyst/barber-booking/internal/db"
	"github.com/Leganyst/barber-booking/internal/identity"
	"github.com/Leganyst/barber-booking/internal/jobs"
	"github.com/Leganyst/barber-booking/internal/logger"
	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/notify"
	"github.com/Leganyst/barber-booking/internal/repository"
	"github.com/Leganyst/barber-booking/internal/service"
)

func main() {
	// 1. Конфиг из .env и окружения.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		zl.Fatal("init db", zap.Error(err))
	}

	// 3. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		zl.Fatal("auto migrate", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		zl.Fatal("sql DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// 4. Репозитории (реализации на GORM).
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	reviewRepo := repository.NewGormReviewRepository(gormDB)
	userRepo := repository.NewGormUserRepository(gormDB)
	eventRepo := repository.NewGormEventRepository(gormDB)

	// 5. Учётка администратора: создаётся или сбрасывается при каждом старте.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), cfg.Notify.Timeout)
	_, err = identity.NewSeeder(userRepo, zl).EnsureAdmin(seedCtx, cfg.Admin.Username, cfg.Admin.Password)
	cancelSeed()
	if err != nil {
		zl.Fatal("ensure admin", zap.Error(err))
	}

	// 6. Уведомления: лог всегда, аудит и RabbitMQ по настройкам.
	notifiers := notify.Multi{notify.NewLogNotifier(zl)}
	if cfg.Notify.AuditEvents {
		notifiers = append(notifiers, notify.NewAuditNotifier(eventRepo))
	}
	if cfg.Notify.AMQPURL != "" {
		pub, err := notify.DialAMQP(cfg.Notify.AMQPURL, cfg.Notify.AMQPExchange)
		if err != nil {
			zl.Fatal("init amqp", zap.Error(err))
		}
		defer pub.Close()
		notifiers = append(notifiers, notify.NewAMQPNotifier(pub, userRepo))
	}
	dispatcher := booking.NewDispatcher(notifiers, zl, cfg.Notify.Timeout)

	// 7. Ядро и gRPC-сервисы.
	core := booking.NewService(bookingRepo, reviewRepo, dispatcher, zl)

	grpcServer, healthSrv := service.NewGRPCServer(zl,
		service.NewBarberService(core),
		service.NewIdentityService(userRepo),
	)

	// 8. Дневная сводка по cron.
	scheduler := jobs.NewCron()
	if _, err := jobs.Schedule(scheduler, cfg.StatsCron, jobs.NewDailyStats(core, zl)); err != nil {
		zl.Fatal("schedule daily stats", zap.Error(err))
	}
	scheduler.Start()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		zl.Fatal("listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	zl.Info("barber gRPC server listening", zap.String("addr", cfg.GRPCAddr))

	// 9. Запускаем сервер в горутине.
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			zl.Fatal("grpc serve", zap.Error(err))
		}
	}()

	// 10. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zl.Info("shutting down gRPC server...")
	healthSrv.Shutdown()
	<-scheduler.Stop().Done()
	grpcServer.GracefulStop()

	// уведомления, ушедшие до остановки, дожидаемся
	dispatcher.Wait()
}
