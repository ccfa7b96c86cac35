/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rmqrcode

import "go.uber.org/zap"

// Option configures a Symbol at construction time.
type Option func(*Symbol)

// WithLogger attaches a zap logger a Symbol uses for debug-level tracing
// of its encoding pipeline. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Symbol) {
		if logger != nil {
			s.logger = logger
		}
	}
}
