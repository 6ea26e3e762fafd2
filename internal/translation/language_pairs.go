package translation

import (
	"slices"
	"strings"

	"github.com/glossarygateway/backend/internal/models"
)

// ReconcileLanguagePairs returns the configured pairs the provider supports, in configured order.
//
// When limitTo is not nil, pairs with neither language in limitTo are skipped, and for every
// usable pair the missing side of the matched provider pair is appended to the returned copy of
// limitTo. Only the provider pair that matched the configured pair is considered. A nil limitTo
// disables filtering and is returned as nil.
func ReconcileLanguagePairs(configured, supported []models.LanguagePair, limitTo []string) ([]models.LanguagePair, []string) {
	pairs := make([]models.LanguagePair, 0, len(configured))
	limitToUpdated := slices.Clone(limitTo)

	for _, configuredPair := range configured {
		if limitTo != nil &&
			!containsFold(limitTo, configuredPair.Source) &&
			!containsFold(limitTo, configuredPair.Target) {
			continue
		}

		configuredKey := GlossaryKey(configuredPair.Source, configuredPair.Target)
		var matched bool
		var apiSource, apiTarget string
		for _, supportedPair := range supported {
			apiSource = strings.ToUpper(supportedPair.Source)
			apiTarget = strings.ToUpper(supportedPair.Target)
			if GlossaryKey(apiSource, apiTarget) == configuredKey {
				pairs = append(pairs, configuredPair)
				matched = true
				break
			}
		}

		if !matched || limitTo == nil {
			continue
		}
		if containsFold(limitTo, apiSource) && !containsFold(limitToUpdated, apiTarget) {
			limitToUpdated = append(limitToUpdated, apiTarget)
		} else if containsFold(limitTo, apiTarget) && !containsFold(limitToUpdated, apiSource) {
			limitToUpdated = append(limitToUpdated, apiSource)
		}
	}

	return pairs, limitToUpdated
}

func containsFold(languages []string, language string) bool {
	return slices.ContainsFunc(languages, func(l string) bool {
		return strings.EqualFold(l, language)
	})
}
