package validator

import (
	"github.com/provstack/artifactcheck/pkg/content"
	"github.com/provstack/artifactcheck/pkg/release"
)

// RepoDataFile is the index file a package-index directory must contain.
const RepoDataFile = "repomd.xml"

// NewRepoDataValidator returns the preset for a yum repodata directory:
// a directory containing a required repomd.xml index file. The directory
// itself is required in the usual layouts; pass false to tolerate repos
// without one.
func NewRepoDataValidator(required bool) *Dir {
	return &Dir{
		Required: required,
		Files:    NewScheme().Add(RepoDataFile, &File{Required: true}),
	}
}

// NewReleaseInfoValidator returns the preset for a release-metadata file:
// a file whose content must parse under the release-info scheme. An empty
// content type selects the default.
func NewReleaseInfoValidator(required bool, contentType content.Type) *File {
	return &File{
		Required: required,
		Content: &ContentFile{
			Scheme: release.Scheme(),
			Type:   contentType,
		},
	}
}
