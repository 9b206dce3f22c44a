// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/models"
)

func newVersionCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAppAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var info models.AppBuildInfo
			svc, err := service.NewAppInfoService(rt.info, logger.Nop())
			switch {
			case err == nil:
				info = svc.BuildInfo()
			case !errors.Is(err, service.ErrVersionIsNotSpecified):
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range info.Fields() {
				fmt.Fprintf(out, "Build %s: %s\n", f[0], f[1])
			}
			return nil
		},
	}
}
