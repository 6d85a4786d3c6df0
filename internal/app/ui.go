package app

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/nameval/nameval"
)

type tableColumn struct {
	Title  string
	Width  float32
	Render func(nameval.Result) string
}

// featureLabels maps feature names to their Japanese display labels.
var featureLabels = map[string]string{
	"length":          "長さ",
	"openness":        "開放感",
	"specialRatio":    "特殊音",
	"yoonRatio":       "単純性",
	"voicedRatio":     "清音性",
	"semiVoicedRatio": "破裂音",
	"vowelDiversity":  "母音多様",
	"phonemeDensity":  "音素密度",
}

var modeChoices = []struct {
	Label string
	Value nameval.CompositionMode
}{
	{"加重平均（バランス型）", nameval.ModeSum},
	{"幾何平均（ボトルネック型）", nameval.ModeGeometric},
}

type uiState struct {
	service *nameval.Service

	w          fyne.Window
	nameInput  *widget.Entry
	kanaLabel  *widget.Label
	moraLabel  *widget.Label
	scoreLabel *widget.Label
	featLabel  *widget.Label
	status     *widget.Label
	statusBind binding.String

	sliders    map[string]*widget.Slider
	modeSelect *widget.Select

	resTbl  *widget.Table
	columns []tableColumn
	rows    []nameval.Result

	evalBtn   *widget.Button
	loadBtn   *widget.Button
	exportBtn *widget.Button
}

func buildUI(a fyne.App, svc *nameval.Service) *uiState {
	u := &uiState{service: svc, sliders: make(map[string]*widget.Slider)}
	u.w = a.NewWindow("Naming-Eval (発音しやすさ診断)")

	u.statusBind = binding.NewString()
	_ = u.statusBind.Set("準備完了")
	u.status = widget.NewLabelWithData(u.statusBind)

	u.nameInput = widget.NewEntry()
	u.nameInput.SetPlaceHolder("名前（かな/カナ/混在OK）")
	u.nameInput.SetText("サクラ")
	u.nameInput.OnChanged = func(string) { u.recompute() }

	u.kanaLabel = widget.NewLabel("")
	u.moraLabel = widget.NewLabel("")
	u.featLabel = widget.NewLabel("")
	u.scoreLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	cfg := svc.Config()
	sliderBox := container.NewVBox()
	for _, name := range nameval.FeatureNames() {
		featName := name
		slider := widget.NewSlider(0, 1)
		slider.Step = 0.01
		slider.Value = cfg.Weights[featName]
		slider.OnChanged = func(v float64) {
			c := u.service.Config()
			c.Weights[featName] = v
			u.service.UpdateConfig(c)
			u.recompute()
		}
		u.sliders[featName] = slider
		sliderBox.Add(widget.NewLabel(fmt.Sprintf("w: %s (%s)", featName, featureLabels[featName])))
		sliderBox.Add(slider)
	}

	modeLabels := make([]string, len(modeChoices))
	for i, c := range modeChoices {
		modeLabels[i] = c.Label
	}
	u.modeSelect = widget.NewSelect(modeLabels, func(selected string) {
		for _, c := range modeChoices {
			if c.Label == selected {
				cfg := u.service.Config()
				cfg.Mode = c.Value
				u.service.UpdateConfig(cfg)
				break
			}
		}
		u.recompute()
	})
	u.modeSelect.SetSelectedIndex(modeIndex(cfg.Mode))

	u.evalBtn = widget.NewButton("診断する", func() { u.recompute() })
	u.loadBtn = widget.NewButton("ファイル読込", func() { u.onLoadFile() })
	u.exportBtn = widget.NewButton("CSVエクスポート", func() { u.onExport() })

	u.columns = makeColumns()
	u.resTbl = widget.NewTable(
		func() (int, int) { return len(u.rows) + 1, len(u.columns) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			lbl := obj.(*widget.Label)
			if id.Row == 0 {
				lbl.SetText(u.columns[id.Col].Title)
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			rowIdx := id.Row - 1
			if rowIdx >= len(u.rows) {
				lbl.SetText("")
				return
			}
			lbl.SetText(u.columns[id.Col].Render(u.rows[rowIdx]))
		},
	)
	for i, col := range u.columns {
		u.resTbl.SetColumnWidth(i, col.Width)
	}

	left := container.NewVBox(
		widget.NewLabelWithStyle("入力", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.nameInput,
		u.evalBtn,
		widget.NewSeparator(),
		u.kanaLabel,
		u.moraLabel,
		u.featLabel,
		u.scoreLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("合成重み（インタラクティブ）", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sliderBox,
		u.modeSelect,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, u.loadBtn, u.exportBtn),
		u.status,
	)

	split := container.NewHSplit(container.NewVScroll(left), u.resTbl)
	split.Offset = 0.4
	u.w.SetContent(split)
	u.w.Resize(fyne.NewSize(1100, 720))
	u.recompute()
	return u
}

func modeIndex(mode nameval.CompositionMode) int {
	for i, c := range modeChoices {
		if c.Value == mode {
			return i
		}
	}
	return 0
}

func makeColumns() []tableColumn {
	cols := []tableColumn{
		{Title: "名前", Width: 160, Render: func(r nameval.Result) string { return r.Name }},
		{Title: "カナ", Width: 140, Render: func(r nameval.Result) string { return r.Kana }},
		{Title: "モーラ", Width: 180, Render: func(r nameval.Result) string { return strings.Join(r.Moras, "|") }},
		{Title: "M", Width: 50, Render: func(r nameval.Result) string { return strconv.Itoa(r.M) }},
		{Title: "EPI", Width: 80, Render: func(r nameval.Result) string { return fmt.Sprintf("%.3f", r.Score) }},
	}
	for _, name := range nameval.FeatureNames() {
		featName := name
		cols = append(cols, tableColumn{
			Title: featureLabels[featName],
			Width: 80,
			Render: func(r nameval.Result) string {
				return fmt.Sprintf("%.2f", r.Features.Value(featName))
			},
		})
	}
	return cols
}

// recompute re-runs the single-name pipeline. Evaluation is pure and
// O(input length), so it is simply re-invoked on every interaction.
func (u *uiState) recompute() {
	r := u.service.Evaluate(u.nameInput.Text)
	u.kanaLabel.SetText("正規化カナ: " + r.Kana)
	u.moraLabel.SetText(fmt.Sprintf("モーラ列: %s (M=%d)", strings.Join(r.Moras, " | "), r.M))
	var parts []string
	for _, name := range nameval.FeatureNames() {
		parts = append(parts, fmt.Sprintf("%s=%.2f", featureLabels[name], r.Features.Value(name)))
	}
	u.featLabel.SetText(strings.Join(parts, "  "))
	u.scoreLabel.SetText(fmt.Sprintf("EPI: %.3f", r.Score))
}

func (u *uiState) onLoadFile() {
	fd := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		path := uc.URI().Path()
		_ = uc.Close()
		names, err := nameval.ParseNameFile(path, nameval.NameParseOptions{})
		if err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		if len(names) == 0 {
			dialog.ShowInformation("情報", "名前が見つかりませんでした", u.w)
			return
		}
		u.setBusy(true)
		_ = u.statusBind.Set(fmt.Sprintf("評価中 (%d件)...", len(names)))
		start := time.Now()
		go func() {
			results, skipped := u.service.EvaluateAll(names)
			fyne.Do(func() {
				u.rows = results
				u.resTbl.Refresh()
				u.setBusy(false)
				msg := fmt.Sprintf("完了 %d件 (%.1fs)", len(results), time.Since(start).Seconds())
				if skipped > 0 {
					msg += fmt.Sprintf(" / スキップ %d件", skipped)
				}
				_ = u.statusBind.Set(msg)
			})
		}()
	}, u.w)
	fd.Show()
}

func (u *uiState) onExport() {
	if len(u.rows) == 0 {
		dialog.ShowInformation("情報", "出力データがありません", u.w)
		return
	}
	fd := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		defer uc.Close()
		w := csv.NewWriter(uc)
		header := []string{"name", "kana", "mora", "M", "score"}
		header = append(header, nameval.FeatureNames()...)
		_ = w.Write(header)
		for _, r := range u.rows {
			record := []string{
				r.Name,
				r.Kana,
				strings.Join(r.Moras, "|"),
				strconv.Itoa(r.M),
				fmt.Sprintf("%.3f", r.Score),
			}
			for _, name := range nameval.FeatureNames() {
				record = append(record, fmt.Sprintf("%.3f", r.Features.Value(name)))
			}
			_ = w.Write(record)
		}
		w.Flush()
		_ = u.statusBind.Set(fmt.Sprintf("CSVエクスポート完了 (%d件)", len(u.rows)))
	}, u.w)
	fd.SetFileName("result.csv")
	fd.Show()
}

func (u *uiState) setBusy(b bool) {
	if b {
		u.evalBtn.Disable()
		u.loadBtn.Disable()
		u.exportBtn.Disable()
	} else {
		u.evalBtn.Enable()
		u.loadBtn.Enable()
		u.exportBtn.Enable()
	}
}
