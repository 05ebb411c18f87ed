package server

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazeway/model"
)

const LevelPath = "data/level_1.txt"

func Load() (*model.Grid, error) {
	file, err := os.Open(LevelPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	grid, err := model.ParseLevel(file)
	if err != nil {
		log.Printf("failed parsing level: %s", err)
		return nil, err
	}
	return grid, nil
}
