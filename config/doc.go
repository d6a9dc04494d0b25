// Package config loads solver settings with viper.
//
// Sources, lowest precedence first:
//
//	defaults     – strategy=best_first, max_branches=-1, log_level=info, log_format=text
//	config file  – optional YAML (or any format viper recognises by extension);
//	               a missing file is not an error
//	environment  – BNB_STRATEGY, BNB_MAX_BRANCHES, BNB_LOG_LEVEL, BNB_LOG_FORMAT
//
// Settings are validated on load: an unknown strategy or a budget below -1
// fails with core.ErrConfiguration.
package config
