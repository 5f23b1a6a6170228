package main

import (
	"fmt"

	"github.com/touchline/goalviz/internal/config"
	"github.com/touchline/goalviz/internal/storage"
	"github.com/touchline/goalviz/internal/storage/file"
	"github.com/touchline/goalviz/internal/storage/memory"
)

func createStorageBackend(storageCfg config.StorageConfig) (storage.Backend, error) {
	switch storageCfg.Type {
	case "file", "":
		Logger.Info("File storage backend initialized", "dir", storageCfg.File.OutputDir,
			"compress", storageCfg.File.CompressOutput, "exportScene", storageCfg.File.ExportScene)
		return file.New(storageCfg.File), nil

	case "memory":
		Logger.Info("Memory storage backend initialized")
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageCfg.Type)
	}
}
