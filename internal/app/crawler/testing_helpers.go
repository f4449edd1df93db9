package crawler

import (
	"fmt"
	"os"
	"testing"

	"github.com/yama6a/rialcom-tariffs/internal/pkg/model"
)

// LoadGoldenFile loads a golden file from disk and returns its contents as a string.
// The filename should be relative to the test's working directory (typically the package directory).
func LoadGoldenFile(t *testing.T, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", filename, err)
	}
	return string(data)
}

// FormatTariff renders a record with optional fields dereferenced, for readable test failures.
func FormatTariff(r model.TariffRecord) string {
	return fmt.Sprintf("{name:%q channels:%s speed:%s fee:%d}",
		r.Name, formatOptional(r.ChannelCount), formatOptional(r.AccessSpeed), r.MonthlyFee)
}

func formatOptional(v *int) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d", *v)
}

// AssertTariffs checks that got matches want record by record, comparing optional fields by value.
func AssertTariffs(t *testing.T, got, want []model.TariffRecord) {
	t.Helper()

	if len(got) != len(want) {
		t.Errorf("tariff count = %d, want %d", len(got), len(want))
		for i, r := range got {
			t.Logf("got[%d] = %s", i, FormatTariff(r))
		}
		return
	}

	for i := range want {
		if FormatTariff(got[i]) != FormatTariff(want[i]) {
			t.Errorf("tariff[%d] = %s, want %s", i, FormatTariff(got[i]), FormatTariff(want[i]))
		}
	}
}
