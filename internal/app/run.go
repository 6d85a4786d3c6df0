package app

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"yashubustudio/nameval/nameval"
)

const fyneAppID = "yashubustudio.nameval"

// Run loads the configuration and starts the desktop UI. The config
// is written back on exit so slider adjustments survive restarts.
func Run() error {
	cfg, err := nameval.LoadConfig("")
	if err != nil {
		return err
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	svc := nameval.NewService(cfg, logger)

	a := fyneapp.NewWithID(fyneAppID)
	u := buildUI(a, svc)
	defer func() {
		if err := nameval.SaveConfig("", svc.Config()); err != nil {
			logger.Printf("設定の保存に失敗しました: %v", err)
		}
	}()
	u.w.ShowAndRun()
	return nil
}
