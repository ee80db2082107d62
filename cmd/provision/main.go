package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"quill/internal/config"
	"quill/internal/db"
	"quill/internal/repository"
	"quill/pkg/log"

	"go.uber.org/zap/zapcore"
)

func main() {
	username := flag.String("username", "", "login name of the user to create")
	password := flag.String("password", "", "plaintext password, stored as a bcrypt hash")
	role := flag.String("role", defaultRole, "role tag stored with the user")
	flag.Parse()

	logger := log.NewZapLogger("quill-provision", zapcore.InfoLevel)
	defer logger.Sync()

	database := config.NewDatabase()
	dbConn, err := db.NewGormDB(database.Driver, database.ConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", database.Driver)
		os.Exit(1)
	}
	defer dbConn.Close()

	repo := repository.NewBlogRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		os.Exit(1)
	}

	user, err := provisionUser(context.Background(), repo, *username, *password, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "provision user: %s\n", err)
		os.Exit(1)
	}

	logger.Infow("user created", "user_id", user.ID, "username", user.Username, "role", user.Role)
}
