// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must end with a return of a table, for example:
//
//   return {
//       balancer = "avl",
//       reverse = false,
//       language = "en",
//       logging = {
//           directory = "log",
//           file = "treesort.log",
//           size = 1048576,
//           count = 10,
//           levels = { DEFAULT = "info" },
//       },
//   }
package configuration
