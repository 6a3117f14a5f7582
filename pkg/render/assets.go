package render

// reportAssets is the static style and behavior payload embedded once
// into every report. It carries no report data; interactivity attaches
// to the markup hooks emitted by the template (.test-case, .test-header,
// .toggle-button, .test-details, #expand-all, #collapse-all).
const reportAssets = `<style>
    * {
        margin: 0;
        padding: 0;
        box-sizing: border-box;
    }

    body {
        font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
        line-height: 1.6;
        color: #333;
        background-color: #f5f5f5;
    }

    .container {
        max-width: 1200px;
        margin: 0 auto;
        padding: 20px;
    }

    .header {
        background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
        color: white;
        padding: 30px;
        border-radius: 10px;
        margin-bottom: 30px;
        box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
    }

    .header h1 {
        font-size: 2.5em;
        margin-bottom: 10px;
    }

    .header .subtitle {
        font-size: 1.2em;
        opacity: 0.9;
    }

    .source-info {
        background: rgba(255, 255, 255, 0.1);
        border-radius: 8px;
        padding: 15px;
        margin-top: 15px;
        border-left: 4px solid rgba(255, 255, 255, 0.3);
    }

    .source-info .source-label {
        font-size: 0.9em;
        opacity: 0.8;
        margin-bottom: 5px;
        text-transform: uppercase;
        letter-spacing: 0.5px;
    }

    .source-info .source-path {
        font-family: 'Courier New', monospace;
        font-size: 0.95em;
        word-break: break-all;
        background: rgba(0, 0, 0, 0.2);
        padding: 8px 12px;
        border-radius: 4px;
        border: 1px solid rgba(255, 255, 255, 0.2);
    }

    .stats-grid {
        display: grid;
        grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
        gap: 20px;
        margin-bottom: 30px;
    }

    .stat-card {
        background: white;
        padding: 25px;
        border-radius: 10px;
        box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
        text-align: center;
        transition: transform 0.2s;
    }

    .stat-card:hover {
        transform: translateY(-2px);
    }

    .stat-number {
        font-size: 2.5em;
        font-weight: bold;
        margin-bottom: 10px;
    }

    .stat-label {
        color: #666;
        font-size: 1.1em;
    }

    .tests-total { color: #3498db; }
    .tests-passed { color: #27ae60; }
    .tests-failed { color: #e74c3c; }
    .tests-skipped { color: #f39c12; }
    .tests-errors { color: #9b59b6; }

    .test-results {
        background: white;
        border-radius: 10px;
        box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
        overflow: hidden;
    }

    .test-results-header {
        background: #34495e;
        color: white;
        padding: 20px;
        font-size: 1.3em;
        font-weight: bold;
        display: flex;
        justify-content: space-between;
        align-items: center;
    }

    .bulk-actions {
        display: flex;
        gap: 10px;
    }

    .bulk-action-btn {
        background: rgba(255, 255, 255, 0.2);
        border: 1px solid rgba(255, 255, 255, 0.3);
        color: white;
        padding: 8px 16px;
        border-radius: 5px;
        cursor: pointer;
        font-size: 0.9em;
        transition: background-color 0.2s;
    }

    .bulk-action-btn:hover {
        background: rgba(255, 255, 255, 0.3);
    }

    .test-case {
        border-bottom: 1px solid #eee;
        padding: 20px;
        transition: background-color 0.2s;
    }

    .test-case:hover {
        background-color: #f8f9fa;
    }

    .test-case:last-child {
        border-bottom: none;
    }

    .test-header {
        display: flex;
        justify-content: space-between;
        align-items: center;
        margin-bottom: 15px;
        cursor: pointer;
        user-select: none;
    }

    .test-header:hover {
        background-color: rgba(0, 0, 0, 0.02);
        border-radius: 5px;
        padding: 5px;
        margin: -5px;
    }

    .test-header-left {
        display: flex;
        align-items: center;
        flex: 1;
    }

    .toggle-button {
        background: none;
        border: none;
        font-size: 1.2em;
        margin-right: 10px;
        cursor: pointer;
        color: #666;
        transition: transform 0.2s, color 0.2s;
        padding: 5px;
        border-radius: 3px;
    }

    .toggle-button:hover {
        color: #333;
        background-color: rgba(0, 0, 0, 0.05);
    }

    .toggle-button.expanded {
        transform: rotate(90deg);
        color: #007bff;
    }

    .test-name {
        font-weight: bold;
        font-size: 1.1em;
        color: #2c3e50;
    }

    .test-status {
        padding: 5px 15px;
        border-radius: 20px;
        font-size: 0.9em;
        font-weight: bold;
        text-transform: uppercase;
    }

    .status-passed {
        background-color: #d4edda;
        color: #155724;
    }

    .status-failed {
        background-color: #f8d7da;
        color: #721c24;
    }

    .status-skipped {
        background-color: #fff3cd;
        color: #856404;
    }

    .status-error {
        background-color: #f8d7da;
        color: #721c24;
    }

    .test-details {
        margin-top: 15px;
        overflow: hidden;
        transition: max-height 0.3s ease-out, opacity 0.3s ease-out;
        max-height: 0;
        opacity: 0;
    }

    .test-details.expanded {
        max-height: 2000px;
        opacity: 1;
    }

    .test-detail-row {
        display: flex;
        margin-bottom: 8px;
    }

    .test-detail-label {
        font-weight: bold;
        min-width: 120px;
        color: #555;
    }

    .test-detail-value {
        flex: 1;
        word-break: break-all;
    }

    .system-out {
        background-color: #f8f9fa;
        border: 1px solid #dee2e6;
        border-radius: 5px;
        padding: 15px;
        margin-top: 10px;
        font-family: 'Courier New', monospace;
        font-size: 0.9em;
        white-space: pre-wrap;
        max-height: 200px;
        overflow-y: auto;
    }

    .skipped-reason {
        background-color: #fff3cd;
        border: 1px solid #ffeaa7;
        border-radius: 5px;
        padding: 10px;
        margin-top: 10px;
        color: #856404;
    }

    .error-message {
        background-color: #f8d7da;
        border: 1px solid #f5c6cb;
        border-radius: 5px;
        padding: 10px;
        margin-top: 10px;
        color: #721c24;
    }

    .footer {
        text-align: center;
        margin-top: 40px;
        padding: 20px;
        color: #666;
        border-top: 1px solid #eee;
    }

    @media (max-width: 768px) {
        .container {
            padding: 10px;
        }

        .header h1 {
            font-size: 2em;
        }

        .stats-grid {
            grid-template-columns: repeat(auto-fit, minmax(150px, 1fr));
        }

        .test-header {
            flex-direction: column;
            align-items: flex-start;
        }

        .test-header-left {
            width: 100%;
            margin-bottom: 10px;
        }

        .test-status {
            margin-top: 10px;
        }

        .test-results-header {
            flex-direction: column;
            align-items: flex-start;
            gap: 15px;
        }

        .bulk-actions {
            width: 100%;
            justify-content: flex-start;
        }
    }
</style>

<script>
    document.addEventListener('DOMContentLoaded', function() {
        const testCases = document.querySelectorAll('.test-case');
        testCases.forEach(function(testCase) {
            const toggleBtn = testCase.querySelector('.toggle-button');
            const details = testCase.querySelector('.test-details');

            toggleBtn.textContent = '▶';
            details.classList.remove('expanded');

            testCase.querySelector('.test-header').addEventListener('click', function() {
                toggleTestDetails(toggleBtn, details);
            });
        });

        const expandAllBtn = document.getElementById('expand-all');
        const collapseAllBtn = document.getElementById('collapse-all');

        if (expandAllBtn) {
            expandAllBtn.addEventListener('click', function() {
                testCases.forEach(function(testCase) {
                    const toggleBtn = testCase.querySelector('.toggle-button');
                    const details = testCase.querySelector('.test-details');
                    if (!details.classList.contains('expanded')) {
                        toggleTestDetails(toggleBtn, details);
                    }
                });
            });
        }

        if (collapseAllBtn) {
            collapseAllBtn.addEventListener('click', function() {
                testCases.forEach(function(testCase) {
                    const toggleBtn = testCase.querySelector('.toggle-button');
                    const details = testCase.querySelector('.test-details');
                    if (details.classList.contains('expanded')) {
                        toggleTestDetails(toggleBtn, details);
                    }
                });
            });
        }

        document.addEventListener('keydown', function(e) {
            if (e.ctrlKey || e.metaKey) {
                if (e.key === 'a') {
                    e.preventDefault();
                    if (expandAllBtn) expandAllBtn.click();
                } else if (e.key === 'd') {
                    e.preventDefault();
                    if (collapseAllBtn) collapseAllBtn.click();
                }
            }
        });
    });

    function toggleTestDetails(toggleBtn, details) {
        if (details.classList.contains('expanded')) {
            toggleBtn.textContent = '▶';
            toggleBtn.classList.remove('expanded');
            details.classList.remove('expanded');
        } else {
            toggleBtn.textContent = '▼';
            toggleBtn.classList.add('expanded');
            details.classList.add('expanded');
        }
    }
</script>`
