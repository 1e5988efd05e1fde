package syscfghelper

import (
	"github.com/WangWilly/unisat-connector/pkgs/clipkg/helpers/journalhelper"
	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/clients/unisatclient"
	"github.com/WangWilly/unisat-connector/pkgs/logging"
	"github.com/gookit/color"

	log "github.com/sirupsen/logrus"
)

// GetMainClient builds the client described by the config. Extra options are
// applied last.
func (h *helper) GetMainClient(opts ...unisatclient.Option) (*unisatclient.Client, error) {
	logger := log.WithField("caller", "syscfghelper.GetMainClient")

	level, err := logging.ParseLevel(h.sysConfig.Log.Level)
	if err != nil {
		logger.Errorln("failed to parse log level:", err)
		return nil, err
	}
	if h.cliParams.IsDebug {
		level = log.DebugLevel
	}

	encoding, err := h.sysConfig.Encoding()
	if err != nil {
		logger.Errorln("failed to parse param encoding:", err)
		return nil, err
	}

	options := []unisatclient.Option{
		unisatclient.WithLogger(logging.NewLogger(h.sysConfig.Log.Output, level)),
		unisatclient.WithTimeout(h.sysConfig.Timeout()),
		unisatclient.WithParamEncoding(encoding),
	}

	////////////////////////////////////////////////////////////////////////////

	if h.sysConfig.Journal.Enabled {
		db, err := h.GetJournalDB()
		if err != nil {
			logger.Errorln("failed to open journal:", err)
			return nil, err
		}
		options = append(options, unisatclient.WithCallObserver(journalhelper.New(db).Observer()))
	}

	////////////////////////////////////////////////////////////////////////////

	client := unisatclient.New(h.sysConfig.BaseURL(), h.sysConfig.ApiKey, append(options, opts...)...)
	logger.Infoln("using endpoint:", color.FgLightBlue.Render(client.BaseURL()))
	return client, nil
}
