/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package facts

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/twpayne/go-vfs/v4"

	"github.com/rancher-sandbox/upgrade-toolkit/pkg/constants"
)

// OSReleaseSource reads OS release facts from the os-release file of the
// given filesystem. os-release files use the dotenv syntax.
type OSReleaseSource struct {
	fs   vfs.FS
	path string
}

func NewOSReleaseSource(fs vfs.FS) *OSReleaseSource {
	return NewOSReleaseSourceFromPath(fs, constants.OSReleasePath)
}

func NewOSReleaseSourceFromPath(fs vfs.FS, path string) *OSReleaseSource {
	return &OSReleaseSource{fs: fs, path: path}
}

// Consume parses the os-release file into release records. A missing file
// or a file without an ID yields zero records, whether that is fatal is up
// to the caller.
func (s OSReleaseSource) Consume() ([]OSRelease, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	env, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, err
	}

	if env["ID"] == "" {
		return nil, nil
	}

	return []OSRelease{{
		ReleaseID: env["ID"],
		VersionID: env["VERSION_ID"],
	}}, nil
}
