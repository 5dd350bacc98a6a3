package config

import (
	"contract-summarizer/internal/domain"
	"contract-summarizer/internal/extractor"
	"contract-summarizer/internal/service"
	"contract-summarizer/internal/summarizer"
	"contract-summarizer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	Extractor      domain.TextExtractor
	Upstream       domain.Summarizer
	SummaryService domain.SummaryService
	ExportService  domain.DocumentExporter
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	pdfExtractor := extractor.NewPDFExtractor(appLogger)
	upstream := summarizer.NewClient(
		config.GetAnthropicAPIKey(),
		config.GetAnthropicModel(),
		appLogger,
		summarizer.WithTimeout(config.GetUpstreamTimeout()),
	)

	summaryService := service.NewSummaryService(config, pdfExtractor, upstream, appLogger)
	exportService := service.NewExportService(appLogger)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		Extractor:      pdfExtractor,
		Upstream:       upstream,
		SummaryService: summaryService,
		ExportService:  exportService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
