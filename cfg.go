package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/zucenko/mazeway/model"
)

func Load() (*model.Grid, error) {
	file, fileErr := ebitenutil.OpenFile("data/level_1.txt")
	if fileErr != nil {
		return nil, fileErr
	}
	defer file.Close()

	grid, err := model.ParseLevel(file)
	if err != nil {
		log.Printf("failed parsing level: %s", err)
		return nil, err
	}
	return grid, nil
}
