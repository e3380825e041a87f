package system_healthcheck

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct{}

type HealthReport struct {
	Status            string  `json:"status"`
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
}

func (s *HealthcheckService) GetHealth() (*HealthReport, error) {
	memoryStat, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	diskStat, err := disk.Usage("/")
	if err != nil {
		return nil, fmt.Errorf("failed to read disk stats: %w", err)
	}

	return &HealthReport{
		Status:            "ok",
		MemoryUsedPercent: memoryStat.UsedPercent,
		DiskUsedPercent:   diskStat.UsedPercent,
	}, nil
}
