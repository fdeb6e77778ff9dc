package cmd

import (
	"github.com/cheggaaa/pb/v3"
	"github.com/velocitia/prospectsdata/pkg/importer"
)

// importProgress shows rows read from the file. Total is 0 when the
// number of rows is not known in advance.
type importProgress struct {
	bar *pb.ProgressBar
}

func newImportProgress(total int, prefix string) *importProgress {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return &importProgress{bar: bar}
}

// update is an importer.Progress.
func (p *importProgress) update(c importer.Counters, total int) {
	if total > 0 && p.bar.Total() != int64(total) {
		p.bar.SetTotal(int64(total))
	}
	p.bar.SetCurrent(int64(c.Seen))
}

func (p *importProgress) finish() {
	p.bar.Finish()
}
