package launcher

import (
	"math"

	"limeal.fr/vlauncher/pkg/utils"
)

// EstimateUnknown is returned when no version is selected; progress UIs must
// rescale rather than overflow.
const EstimateUnknown = int64(math.MaxInt64)

// EstimateSize sums the declared sizes of everything the pipeline will
// handle: the runtime archive (remote content length), the main artifact,
// every library artifact and native classifier applicable to the platform,
// and every asset object. The pipeline advances progress by the same
// quantities, so the final progress total equals this estimate. A nil
// provisioner means the runtime stage will be skipped and its archive must
// not be counted.
func EstimateSize(provisioner *RuntimeProvisioner, meta *VersionMetadata, index *AssetIndex, platform Platform) int64 {
	if meta == nil || index == nil {
		return EstimateUnknown
	}

	var total int64

	if provisioner != nil {
		if url, err := provisioner.ArchiveURL(meta.JavaMajor); err == nil {
			if size, err := utils.RemoteContentLength(url); err == nil {
				total += size
			}
		}
	}

	total += meta.Client.Size

	for _, lib := range meta.Libraries {
		if artifact := lib.Downloads.Artifact; artifact != nil && artifact.URL != "" {
			total += artifact.Size
		}
		if classifier := classifierFor(lib, platform); classifier != nil && classifier.URL != "" {
			total += classifier.Size
		}
	}

	for _, object := range index.Objects {
		total += object.Size
	}

	return total
}
