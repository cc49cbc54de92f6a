package main

import (
	"os"

	"github.com/itai/estagios/internal/pkg/logger"
	"github.com/itai/estagios/internal/server"
)

// @title Portal de Estágios API
// @version 1.0.0
// @description Internship management portal REST API
// @termsOfService http://swagger.io/terms/

// @contact.name ITAI - Instituto de Tecnologia Aplicada e Inovação
// @contact.url https://www.itai.org.br
// @contact.email contato@itai.org.br

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey TokenAccess
// @in header
// @name Authorization
// @description JWT token issued at login, sent in the Authorization header

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
