/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/birdcage/zendesk-ada/ada"
	"github.com/birdcage/zendesk-ada/migrate"
	"github.com/birdcage/zendesk-ada/zendesk"
)

func newZendeskAPI() (*zendesk.API, error) {
	api, err := zendesk.NewAPI(ZendeskSubdomain, ZendeskEmail, ZendeskToken, IncludeRestricted)
	if err != nil {
		return nil, fmt.Errorf("cmd: Zendesk API creation failed: %w", err)
	}
	return api, nil
}

func newAdaAPI() (*ada.API, error) {
	token := AdaToken
	if token == "" && len(AdaTokenCmd) > 0 {
		tokenCmdOutput, err := exec.Command(AdaTokenCmd[0], AdaTokenCmd[1:]...).Output()
		if err != nil {
			return nil, fmt.Errorf("cmd: couldn't execute ada-token-cmd '%v': %w", AdaTokenCmd, err)
		}
		token = strings.Split(string(tokenCmdOutput), "\n")[0]
	}

	api, err := ada.NewAPI(AdaHandle, token)
	if err != nil {
		return nil, fmt.Errorf("cmd: Ada API creation failed: %w", err)
	}
	return api, nil
}

// filterSetFromFlags turns the raw filter flags into a FilterSet; brand and
// category ids arrive as strings so they can also come from the YAML config.
func filterSetFromFlags() (migrate.FilterSet, error) {
	brandIDs, err := parseIDList("brands", FilterBrands)
	if err != nil {
		return migrate.FilterSet{}, err
	}
	categoryIDs, err := parseIDList("categories", FilterCategories)
	if err != nil {
		return migrate.FilterSet{}, err
	}

	locales := make([]string, 0, len(FilterLocales))
	for _, l := range FilterLocales {
		if trimmed := strings.ToLower(strings.TrimSpace(l)); trimmed != "" {
			locales = append(locales, trimmed)
		}
	}

	return migrate.FilterSet{
		Locales:       locales,
		BrandIDs:      brandIDs,
		CategoryIDs:   categoryIDs,
		PublishedOnly: PublishedOnly,
	}, nil
}

func parseIDList(what string, values []string) ([]int64, error) {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cmd: --%s takes numeric ids, got %q", what, v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
