package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reports (
    report_id            TEXT PRIMARY KEY,
    created_at           TEXT NOT NULL,
    tier                 TEXT NOT NULL,
    total_budget         TEXT NOT NULL,
    spent                TEXT NOT NULL,
    remaining            TEXT NOT NULL,
    spent_percent        TEXT NOT NULL,
    efficiency           TEXT NOT NULL,
    adapt_to_user        INTEGER NOT NULL DEFAULT 0,
    export_path          TEXT,
    summary_text         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS report_selections (
    report_id            TEXT NOT NULL REFERENCES reports(report_id) ON DELETE CASCADE,
    category             TEXT NOT NULL,
    option_id            TEXT NOT NULL,
    position             INTEGER NOT NULL,
    PRIMARY KEY (report_id, category, option_id)
);

CREATE INDEX IF NOT EXISTS idx_reports_created ON reports(created_at);
`
