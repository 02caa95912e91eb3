// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the remote-config client and backend.
//
// Configuration is assembled from several sources. The builder merges them
// with mergo, and a field keeps the value of the first source that sets it:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetServerConfig]. Each one
// projects the merged [StructuredConfig] onto the fields its binary needs
// and validates them.
package config
