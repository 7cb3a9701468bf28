// Copyright 2025 walteh LLC
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

/*
Package config manages configuration parsing and validation for propinject.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Loads run settings from a file, or starts from Default()
- Fills defaults that reproduce the original migration (Design*.js, id)
- Validates patterns and rule inputs before any file is touched

🔍 Example (HCL):

	directory = "src/components/PageBuilder/sections"
	prefix    = "Design"
	extension = ".js"
	param     = "id"
	exclude   = ["DesignLegacy*.js"]

	replacement {
	  old = "className=\"section\""
	  new = "className=\"page-section\""
	}

The same settings in YAML use `replacements:` as a list of old/new pairs.
*/
package config
