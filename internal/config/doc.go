// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the storefront client
// configuration.
//
// Sources, highest priority first:
//  1. Command-line flags
//  2. Environment variables (a .env file is loaded into the environment
//     first without overriding variables that are already set)
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetClientConfig].
package config
