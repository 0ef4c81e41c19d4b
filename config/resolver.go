// Copyright 2026 The Steganon Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	vaultapi "github.com/hashicorp/vault/api"
)

// SeedResolver turns a CLI seed argument into seed bytes, supporting three
// forms: a literal string, an "@path/to/file" reference, or a
// "vault:<secret-path>#<field>" reference resolved through Vault's KV API.
// This keeps long-lived stego seeds out of shell history and process
// listings.
type SeedResolver struct {
	vaultClient *vaultapi.Client
}

// NewSeedResolver builds a resolver. vaultAddr may be empty if no
// reference will use the vault: scheme; the client is only ever contacted
// lazily, on the first vault: reference.
func NewSeedResolver(vaultAddr string) (*SeedResolver, error) {
	vcfg := vaultapi.DefaultConfig()
	if vaultAddr != "" {
		vcfg.Address = vaultAddr
	}
	client, err := vaultapi.NewClient(vcfg)
	if err != nil {
		return nil, err
	}
	return &SeedResolver{vaultClient: client}, nil
}

// Resolve returns the seed bytes ref refers to.
func (r *SeedResolver) Resolve(ref string) ([]byte, error) {
	switch {
	case strings.HasPrefix(ref, "@"):
		return os.ReadFile(ref[1:])
	case strings.HasPrefix(ref, "vault:"):
		return r.resolveVault(strings.TrimPrefix(ref, "vault:"))
	default:
		return []byte(ref), nil
	}
}

func (r *SeedResolver) resolveVault(pathAndField string) ([]byte, error) {
	path, field, ok := strings.Cut(pathAndField, "#")
	if !ok {
		return nil, fmt.Errorf("config: vault seed reference must be \"vault:<path>#<field>\", got %q", pathAndField)
	}

	secret, err := r.vaultClient.Logical().Read(path)
	if err != nil {
		return nil, err
	}
	if secret == nil {
		return nil, fmt.Errorf("config: no secret found at vault path %q", path)
	}

	raw, ok := secret.Data[field]
	if !ok {
		return nil, fmt.Errorf("config: vault secret at %q has no field %q", path, field)
	}
	s, ok := raw.(string)
	if !ok {
		return nil, errors.New("config: vault secret field is not a string")
	}
	return []byte(s), nil
}

// ResolveAll resolves a seed chain given as CLI argument strings.
func (r *SeedResolver) ResolveAll(refs []string) ([][]byte, error) {
	out := make([][]byte, len(refs))
	for i, ref := range refs {
		seed, err := r.Resolve(ref)
		if err != nil {
			return nil, fmt.Errorf("config: resolving seed %d: %w", i, err)
		}
		out[i] = seed
	}
	return out, nil
}
